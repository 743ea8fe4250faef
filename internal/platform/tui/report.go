package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/lmpedit/internal/demo"
	"github.com/vovakirdan/lmpedit/internal/editor"
	"github.com/vovakirdan/lmpedit/internal/registry"
	"github.com/vovakirdan/lmpedit/internal/storage"
)

// Field is one labelled line of a report.
type Field struct {
	Label string
	Value string
	Tone  Tone
}

// labelWidth aligns the colons of report labels.
const labelWidth = 14

// InfoFields lists what the info command shows about a recording.
// Legacy recordings leave the fields their header lacks empty.
func InfoFields(info editor.Info, v registry.Variant) []Field {
	h := info.Header
	g := info.Geometry

	fields := []Field{{Label: "LMP file", Value: info.Path}}

	if h.Legacy {
		fields = append(fields, Field{Label: "Version"})
	} else {
		fields = append(fields, Field{Label: "Version", Value: fmt.Sprintf("1.%d", h.MinorVersion())})
	}

	fields = append(fields,
		Field{Label: "Skill Level", Value: numbered(h.Skill+1, skillName(v, h.Skill))},
		Field{Label: "Episode", Value: numbered(h.Episode, episodeName(v, h))},
		Field{Label: "Map", Value: numbered(h.Map, mapName(v, h))},
	)

	if h.Legacy {
		fields = append(fields,
			Field{Label: "Play Mode"},
			Field{Label: "-respawn"},
			Field{Label: "-fast"},
			Field{Label: "-nomonsters"},
			Field{Label: "Recorded by"},
		)
	} else {
		fields = append(fields,
			Field{Label: "Play Mode", Value: h.ModeName()},
			Field{Label: "-respawn", Value: yesNo(h.Respawn)},
			Field{Label: "-fast", Value: yesNo(h.Fast)},
			Field{Label: "-nomonsters", Value: yesNo(h.NoMonsters)},
			Field{Label: "Recorded by", Value: demo.PlayerName(h.Recorder)},
		)
	}

	fields = append(fields, Field{Label: "Active Player", Value: h.ActiveNames()})

	if g.Missing == 0 {
		fields = append(fields, Field{Label: "Game Tics", Value: fmt.Sprintf("%.0f", g.Tics)})
	} else {
		fields = append(fields, Field{
			Label: "Game Tics",
			Value: fmt.Sprintf("%.2f <- file missing %d byte(s).", g.Tics, g.Missing),
			Tone:  ToneWarn,
		}, Field{Label: "Whole Tics", Value: fmt.Sprintf("%d", g.WholeTics())})
	}

	return append(fields, Field{Label: "Duration", Value: info.Duration})
}

func numbered(n int, name string) string {
	if name == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d, %s", n, name)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func skillName(v registry.Variant, skill int) string {
	if v == nil {
		return ""
	}
	return v.SkillName(skill)
}

func episodeName(v registry.Variant, h demo.Header) string {
	if v == nil {
		return ""
	}
	return v.EpisodeName(h.Episode, h.Map, h.Legacy)
}

func mapName(v registry.Variant, h demo.Header) string {
	if v == nil {
		return ""
	}
	return v.MapName(h.Episode, h.Map, h.Legacy)
}

// RenderFields renders labelled lines with aligned colons.
func RenderFields(fields []Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("\n")
		}
		tone := f.Tone
		if tone == ToneDefault {
			tone = ToneValue
		}
		b.WriteString(Paint(ToneLabel, fmt.Sprintf("%-*s: ", labelWidth, f.Label)))
		b.WriteString(Paint(tone, f.Value))
	}
	return b.String()
}

// RenderInfo renders the info report of a recording.
func RenderInfo(info editor.Info, v registry.Variant) string {
	return RenderFields(InfoFields(info, v))
}

// ResultFields summarizes a completed transformation.
func ResultFields(res editor.Result) []Field {
	fields := []Field{
		{Label: "Operation", Value: string(res.Operation)},
		{Label: "In", Value: res.Source},
	}
	if !res.Written {
		fields = append(fields, Field{Label: "Out", Value: "(not written)", Tone: ToneMuted})
	} else {
		fields = append(fields, Field{Label: "Out", Value: res.Destination})
	}

	switch res.Operation {
	case editor.OpConvert:
		fields = append(fields, Field{Label: "Version", Value: fmt.Sprintf("1.%d", res.Version)})
	case editor.OpCut:
		fields = append(fields, Field{Label: "Removed", Value: fmt.Sprintf("tics %d-%d (%d)", res.Start, res.End, res.Removed)})
	case editor.OpChop:
		fields = append(fields, Field{Label: "Removed", Value: fmt.Sprintf("%d tic(s)", res.Removed)})
	case editor.OpWait:
		fields = append(fields, Field{Label: "Added", Value: fmt.Sprintf("%d tic(s)", res.Added)})
	case editor.OpUnpause:
		tone := ToneGood
		if res.Runs == 0 {
			tone = ToneMuted
		}
		fields = append(fields, Field{
			Label: "Pauses",
			Value: fmt.Sprintf("%d run(s), %d tic(s) removed", res.Runs, res.Removed),
			Tone:  tone,
		})
	}

	return append(fields, Field{
		Label: "Game Tics",
		Value: fmt.Sprintf("%s -> %s", formatTics(res.TicsBefore), formatTics(res.TicsAfter)),
	})
}

func formatTics(t float64) string {
	if t == float64(int64(t)) {
		return fmt.Sprintf("%.0f", t)
	}
	return fmt.Sprintf("%.2f", t)
}

// RenderResult renders the summary of a completed transformation.
func RenderResult(res editor.Result) string {
	return RenderFields(ResultFields(res))
}

// RenderPauseEvents renders the pause scan log, one line per event.
func RenderPauseEvents(events []editor.PauseEvent) string {
	var b strings.Builder
	for i, ev := range events {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%-14s at tic %d", ev.Kind, ev.Tic)
		tone := ToneDefault
		switch ev.Kind {
		case editor.PauseClosed, editor.PauseAtEOF:
			line += fmt.Sprintf(", %d tic(s) removed", ev.Removed)
			tone = ToneGood
		case editor.PauseSaved:
			line += ", run kept"
			tone = ToneWarn
		case editor.PauseNested, editor.PauseBalanced:
			tone = ToneMuted
		}
		b.WriteString(Paint(tone, line))
	}
	return b.String()
}

// RetargetFields summarizes an in-place header change.
func RetargetFields(res editor.RetargetResult) []Field {
	fields := []Field{{Label: "LMP file", Value: res.Path}}
	if res.OldVersion != res.NewVersion {
		fields = append(fields, Field{
			Label: "Version",
			Value: fmt.Sprintf("1.%d -> 1.%d", res.OldVersion, res.NewVersion),
			Tone:  ToneGood,
		})
	} else {
		fields = append(fields, Field{Label: "Version", Value: fmt.Sprintf("1.%d", res.NewVersion)})
	}
	if res.OldRecorder != res.NewRecorder {
		fields = append(fields, Field{
			Label: "Recorded by",
			Value: fmt.Sprintf("%s -> %s", demo.PlayerName(res.OldRecorder), demo.PlayerName(res.NewRecorder)),
			Tone:  ToneGood,
		})
	} else {
		fields = append(fields, Field{Label: "Recorded by", Value: demo.PlayerName(res.NewRecorder)})
	}
	if !res.Changed {
		fields = append(fields, Field{Label: "Status", Value: "unchanged", Tone: ToneMuted})
	}
	return fields
}

// RenderRetarget renders the summary of an in-place header change.
func RenderRetarget(res editor.RetargetResult) string {
	return RenderFields(RetargetFields(res))
}

// RenderBatch renders the closing line of a batch run and its failures.
func RenderBatch(res editor.BatchResult) string {
	var b strings.Builder
	summary := fmt.Sprintf("%d file(s) processed, %d skipped", res.Processed, res.Skipped)
	if res.Skipped > 0 {
		b.WriteString(Paint(ToneWarn, summary))
	} else {
		b.WriteString(Paint(ToneGood, summary))
	}
	for _, f := range res.Failures {
		b.WriteString("\n")
		b.WriteString(Paint(ToneBad, fmt.Sprintf("  %s: %v", f.Path, f.Err)))
	}
	return b.String()
}

// historyHeaders are the columns of the journal table.
var historyHeaders = []string{"When", "Op", "Variant", "In", "Out", "Tics", "Removed", "Added"}

func historyRow(e storage.Entry) []string {
	return []string{
		e.CreatedAt.Local().Format("Jan 02 15:04"),
		e.Operation,
		e.Variant,
		e.Source,
		e.Destination,
		fmt.Sprintf("%s -> %s", formatTics(e.TicsBefore), formatTics(e.TicsAfter)),
		fmt.Sprintf("%d", e.Removed),
		fmt.Sprintf("%d", e.Added),
	}
}

// RenderHistory renders journal entries as a bordered table.
func RenderHistory(entries []storage.Entry) string {
	if len(entries) == 0 {
		return Paint(ToneMuted, "No edits recorded yet.")
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = historyRow(e)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(historyHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String()
}
