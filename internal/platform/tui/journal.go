package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lmpedit/internal/editor"
	"github.com/vovakirdan/lmpedit/internal/storage"
)

// Journal browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the operation sidebar
	sidebarWidth       = 20  // Width of operation sidebar
	maxEntries         = 200 // Max entries to load per view
)

// allOperations is the sidebar entry that lists every operation.
const allOperations = "all"

// journalViews are the sidebar entries in display order.
var journalViews = []string{
	allOperations,
	string(editor.OpConvert),
	string(editor.OpCut),
	string(editor.OpChop),
	string(editor.OpWait),
	string(editor.OpUnpause),
	string(editor.OpRetarget),
}

// JournalModel is the Bubble Tea model for the journal browser.
type JournalModel struct {
	views       []string
	cursor      int // Currently selected view
	store       *storage.Store
	entries     []storage.Entry
	counts      map[string]int
	loadErr     error
	table       table.Model
	help        help.Model
	keys        JournalKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewJournalModel creates a new journal browser model.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		views:       journalViews,
		store:       store,
		keys:        DefaultJournalKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with columns sized to the window.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Op", Width: 8},
		{Title: "In", Width: 16},
		{Title: "Out", Width: 16},
		{Title: "Tics", Width: 18},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Give spare room to the file columns
	if spare := tableWidth - 80; spare > 0 {
		columns[2].Width += spare / 2
		columns[3].Width += spare - spare/2
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the entries of the current view and the per-operation counts.
func (m *JournalModel) load() {
	m.entries, m.loadErr = nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	view := m.views[m.cursor]
	if view == allOperations {
		m.entries, m.loadErr = m.store.Recent(maxEntries)
	} else {
		m.entries, m.loadErr = m.store.ByOperation(view, maxEntries)
	}

	m.counts = make(map[string]int)
	if stats, err := m.store.Stats(); err == nil {
		for op, st := range stats {
			m.counts[op] = st.Count
			m.counts[allOperations] += st.Count
		}
	}

	m.updateTableRows()
}

// updateTableRows updates the table with the loaded entries.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.CreatedAt.Local().Format("Jan 02 15:04"),
			e.Operation,
			e.Source,
			e.Destination,
			fmt.Sprintf("%s -> %s", formatTics(e.TicsBefore), formatTics(e.TicsAfter)),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal browser.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextOp), key.Matches(msg, m.keys.Right):
			m.cursor = (m.cursor + 1) % len(m.views)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevOp), key.Matches(msg, m.keys.Left):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.views) - 1
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal browser.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("EDIT JOURNAL - %s", strings.ToUpper(m.views[m.cursor]))
	b.WriteString(toneStyles[ToneTitle].Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(Paint(ToneMuted, m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the journal with a sidebar of operations.
func (m JournalModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Operations\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range m.views {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%s%-9s %3d", cursor, v, m.counts[v])))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the journal with operation tabs above the table.
func (m JournalModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.views))
	for i, v := range m.views {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(v)
		} else {
			tabs[i] = tabStyle.Render(" " + v + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.views[m.cursor])
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Cannot read journal:\n%v", m.loadErr))
	}
	if len(m.entries) == 0 {
		return emptyStyle.Render("No edits recorded yet.\nRun cut, chop, wait or rp to fill the journal.")
	}

	return m.table.View()
}

// Selected returns the name of the selected operation view.
func (m JournalModel) Selected() string {
	return m.views[m.cursor]
}

// Entries returns the entries currently shown.
func (m JournalModel) Entries() []storage.Entry {
	return m.entries
}

// RunJournal runs the journal browser until the user quits.
func RunJournal(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
