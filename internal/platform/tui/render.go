// Package tui renders lmpedit reports with lipgloss and runs the
// Bubble Tea journal browser.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone selects the color of a piece of report text.
type Tone int

const (
	ToneDefault Tone = iota
	ToneLabel
	ToneValue
	ToneGood
	ToneWarn
	ToneBad
	ToneMuted
	ToneTitle
)

// toneStyles maps a Tone to its lipgloss style.
var toneStyles = map[Tone]lipgloss.Style{
	ToneDefault: lipgloss.NewStyle(),
	ToneLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ToneValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ToneGood:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ToneWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ToneBad:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ToneMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	ToneTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
}

// Paint renders text in the given tone.
func Paint(t Tone, text string) string {
	style, ok := toneStyles[t]
	if !ok {
		style = toneStyles[ToneDefault]
	}
	return style.Render(text)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
