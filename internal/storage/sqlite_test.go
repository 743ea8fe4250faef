package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lmpedit/internal/editor"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	entries := []Entry{
		{Operation: "cut", Variant: "doom", Source: "a.lmp", Destination: "b.lmp", TicsBefore: 100, TicsAfter: 90, Removed: 10},
		{Operation: "wait", Variant: "doom", Source: "b.lmp", Destination: "c.lmp", TicsBefore: 90, TicsAfter: 125, Added: 35},
		{Operation: "rp", Variant: "heretic", Source: "c.lmp", Destination: "d.lmp", TicsBefore: 125, TicsAfter: 120.5, Removed: 5, Runs: 1},
	}
	for _, e := range entries {
		if _, err := store.Record(e); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(recent))
	}

	// Newest first
	if recent[0].Operation != "rp" || recent[2].Operation != "cut" {
		t.Errorf("Entries not in expected order: %v", recent)
	}
	if recent[0].TicsAfter != 120.5 || recent[0].Runs != 1 || recent[0].Variant != "heretic" {
		t.Errorf("Fields not round-tripped: %+v", recent[0])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("Expected a creation time")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.Record(Entry{Operation: "chop", Source: "in.lmp", Destination: "out.lmp", Removed: int64(i)})
	}

	entries, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 entries with limit, got %d", len(entries))
	}
	if entries[0].Removed != 4 {
		t.Errorf("Expected newest entry first, got %+v", entries[0])
	}
}

func TestStoreByOperationAndSource(t *testing.T) {
	store := openTestStore(t)

	store.Record(Entry{Operation: "cut", Source: "a.lmp", Destination: "b.lmp"})
	store.Record(Entry{Operation: "cut", Source: "x.lmp", Destination: "y.lmp"})
	store.Record(Entry{Operation: "convert", Source: "a.lmp", Destination: "c.lmp"})

	cuts, err := store.ByOperation("cut", 10)
	if err != nil {
		t.Fatalf("ByOperation() failed: %v", err)
	}
	if len(cuts) != 2 {
		t.Errorf("Expected 2 cut entries, got %d", len(cuts))
	}

	fromA, err := store.BySource("a.lmp")
	if err != nil {
		t.Fatalf("BySource() failed: %v", err)
	}
	if len(fromA) != 2 {
		t.Errorf("Expected 2 entries from a.lmp, got %d", len(fromA))
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.Record(Entry{Operation: "cut", Source: "a", Destination: "b"})
	store.Record(Entry{Operation: "cut", Source: "a", Destination: "b"})
	store.Record(Entry{Operation: "wait", Source: "a", Destination: "b"})

	// Clear only cut entries
	if err := store.Clear("cut"); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if cuts, _ := store.ByOperation("cut", 10); len(cuts) != 0 {
		t.Errorf("Expected 0 cut entries after clear, got %d", len(cuts))
	}
	if waits, _ := store.ByOperation("wait", 10); len(waits) != 1 {
		t.Error("Wait entries should not be affected by clearing cut")
	}

	if err := store.Clear(""); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if all, _ := store.Recent(10); len(all) != 0 {
		t.Errorf("Expected empty journal, got %d entries", len(all))
	}
}

func TestStoreRecordEdit(t *testing.T) {
	store := openTestStore(t)

	res := editor.Result{
		Operation:   editor.OpUnpause,
		Source:      "in.lmp",
		Destination: "out.lmp",
		TicsBefore:  20,
		TicsAfter:   15,
		Removed:     5,
		Runs:        1,
	}
	if err := store.RecordEdit(res, "doom"); err != nil {
		t.Fatalf("RecordEdit() failed: %v", err)
	}

	entries, _ := store.Recent(1)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Operation != "rp" || e.Removed != 5 || e.Runs != 1 || e.Variant != "doom" {
		t.Errorf("Unexpected entry: %+v", e)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.Record(Entry{Operation: "cut", Source: "a", Destination: "b", Removed: 10})
	store.Record(Entry{Operation: "cut", Source: "a", Destination: "b", Removed: 5})
	store.Record(Entry{Operation: "wait", Source: "a", Destination: "b", Added: 35})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 operations, got %d", len(stats))
	}
	if cut := stats["cut"]; cut.Count != 2 || cut.Removed != 15 {
		t.Errorf("Unexpected cut stats: %+v", cut)
	}
	if wait := stats["wait"]; wait.Count != 1 || wait.Added != 35 {
		t.Errorf("Unexpected wait stats: %+v", wait)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
