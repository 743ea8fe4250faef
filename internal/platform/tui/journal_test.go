package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lmpedit/internal/storage"
)

func TestJournalModelViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Record(storage.Entry{Operation: "convert", Source: "a.lmp", Destination: "b.lmp"})
	store.Record(storage.Entry{Operation: "cut", Source: "b.lmp", Destination: "c.lmp"})
	store.Record(storage.Entry{Operation: "cut", Source: "c.lmp", Destination: "d.lmp"})

	m := NewJournalModel(store, 120, 40)
	if m.Selected() != allOperations || len(m.Entries()) != 3 {
		t.Fatalf("Expected all 3 entries first, got %q with %d", m.Selected(), len(m.Entries()))
	}

	// tab -> convert, tab -> cut
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(JournalModel)
	if m.Selected() != "cut" || len(m.Entries()) != 2 {
		t.Errorf("Expected 2 cut entries, got %q with %d", m.Selected(), len(m.Entries()))
	}

	view := m.View()
	if !strings.Contains(view, "EDIT JOURNAL - CUT") || !strings.Contains(view, "Operations") {
		t.Errorf("Unexpected view:\n%s", view)
	}

	// shift+tab wraps back through the list
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(JournalModel)
	if m.Selected() != journalViews[len(journalViews)-1] {
		t.Errorf("Expected wrap to %q, got %q", journalViews[len(journalViews)-1], m.Selected())
	}
}

func TestJournalModelNarrowAndQuit(t *testing.T) {
	m := NewJournalModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No edits recorded yet.") {
		t.Errorf("Expected empty message:\n%s", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("Expected quit command")
	}
	if next.(JournalModel).View() != "" {
		t.Error("Quitting model must render nothing")
	}
}

func TestJournalModelResize(t *testing.T) {
	m := NewJournalModel(nil, 60, 20)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	m = next.(JournalModel)
	if !m.showSidebar {
		t.Error("Expected sidebar on a wide window")
	}
}
