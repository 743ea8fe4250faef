package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/lmpedit/internal/demo"
	"github.com/vovakirdan/lmpedit/internal/editor"
	"github.com/vovakirdan/lmpedit/internal/games/doom"
	"github.com/vovakirdan/lmpedit/internal/storage"
)

func fieldMap(fields []Field) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Label] = f.Value
	}
	return m
}

func TestInfoFieldsModern(t *testing.T) {
	h := demo.Header{
		Version:  109,
		Skill:    3,
		Episode:  2,
		Map:      4,
		Mode:     demo.Cooperative,
		Fast:     true,
		Recorder: 0,
		Players:  [demo.MaxPlayers]int{1, 0, 0, 0},
	}
	info := editor.Info{
		Path:     "demo1.lmp",
		Header:   h,
		Geometry: demo.Geometry{Tics: 140},
		Duration: "00:00:04",
	}

	got := fieldMap(InfoFields(info, doom.Variant{}))

	want := map[string]string{
		"LMP file":      "demo1.lmp",
		"Version":       "1.9",
		"Skill Level":   "4, Ultra-Violence",
		"Episode":       "2, The Shores of Hell",
		"Play Mode":     "Single",
		"-respawn":      "No",
		"-fast":         "Yes",
		"Recorded by":   "Green",
		"Active Player": "Green",
		"Game Tics":     "140",
		"Duration":      "00:00:04",
	}
	for label, value := range want {
		if got[label] != value {
			t.Errorf("%s = %q, want %q", label, got[label], value)
		}
	}
}

func TestInfoFieldsLegacyAndPartial(t *testing.T) {
	h := demo.Header{
		Legacy:  true,
		Skill:   2,
		Episode: 1,
		Map:     1,
		Players: [demo.MaxPlayers]int{1, 1, 0, 0},
	}
	info := editor.Info{
		Path:     "old.lmp",
		Header:   h,
		Geometry: demo.Geometry{Tics: 10.5, Records: 11, Missing: 4},
		Duration: "00:00:01",
	}

	fields := InfoFields(info, doom.Variant{})
	got := fieldMap(fields)

	for _, label := range []string{"Version", "Play Mode", "Recorded by"} {
		if got[label] != "" {
			t.Errorf("Legacy %s should be empty, got %q", label, got[label])
		}
	}
	if got["Map"] != "1, Hangar" {
		t.Errorf("Map = %q, want %q", got["Map"], "1, Hangar")
	}
	if got["Active Player"] != "Green, Indigo" {
		t.Errorf("Active Player = %q", got["Active Player"])
	}
	if got["Game Tics"] != "10.50 <- file missing 4 byte(s)." {
		t.Errorf("Game Tics = %q", got["Game Tics"])
	}
	if got["Whole Tics"] != "10" {
		t.Errorf("Whole Tics = %q, want %q", got["Whole Tics"], "10")
	}

	out := RenderFields(fields)
	if !strings.Contains(out, "Game Tics") || !strings.Contains(out, "old.lmp") {
		t.Errorf("Rendered report lacks fields:\n%s", out)
	}
}

func TestResultFields(t *testing.T) {
	tests := []struct {
		name  string
		res   editor.Result
		label string
		want  string
	}{
		{
			name:  "cut",
			res:   editor.Result{Operation: editor.OpCut, Start: 5, End: 8, Removed: 4, TicsBefore: 20, TicsAfter: 16, Written: true},
			label: "Removed",
			want:  "tics 5-8 (4)",
		},
		{
			name:  "wait",
			res:   editor.Result{Operation: editor.OpWait, Added: 35, TicsBefore: 10.5, TicsAfter: 45, Written: true},
			label: "Game Tics",
			want:  "10.50 -> 45",
		},
		{
			name:  "rp without pauses",
			res:   editor.Result{Operation: editor.OpUnpause},
			label: "Out",
			want:  "(not written)",
		},
		{
			name:  "rp",
			res:   editor.Result{Operation: editor.OpUnpause, Runs: 1, Removed: 5, Written: true},
			label: "Pauses",
			want:  "1 run(s), 5 tic(s) removed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldMap(ResultFields(tt.res))
			if got[tt.label] != tt.want {
				t.Errorf("%s = %q, want %q", tt.label, got[tt.label], tt.want)
			}
		})
	}
}

func TestRenderPauseEvents(t *testing.T) {
	out := RenderPauseEvents([]editor.PauseEvent{
		{Kind: editor.PauseOpened, Tic: 10},
		{Kind: editor.PauseClosed, Tic: 15, Removed: 5},
	})
	if !strings.Contains(out, "at tic 10") || !strings.Contains(out, "5 tic(s) removed") {
		t.Errorf("Unexpected pause log:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("Expected 2 lines, got %d", n+1)
	}
}

func TestRetargetFields(t *testing.T) {
	got := fieldMap(RetargetFields(editor.RetargetResult{
		Path:        "duo.lmp",
		OldVersion:  9,
		NewVersion:  5,
		OldRecorder: 0,
		NewRecorder: 1,
		Changed:     true,
	}))
	if got["Version"] != "1.9 -> 1.5" {
		t.Errorf("Version = %q", got["Version"])
	}
	if got["Recorded by"] != "Green -> Indigo" {
		t.Errorf("Recorded by = %q", got["Recorded by"])
	}
	if _, ok := got["Status"]; ok {
		t.Error("Changed result must not report unchanged")
	}
}

func TestRenderBatch(t *testing.T) {
	out := RenderBatch(editor.BatchResult{
		Processed: 2,
		Skipped:   1,
		Failures:  []editor.BatchFailure{{Path: "bad.lmp", Err: errors.New("boom")}},
	})
	if !strings.Contains(out, "2 file(s) processed, 1 skipped") || !strings.Contains(out, "bad.lmp: boom") {
		t.Errorf("Unexpected batch summary:\n%s", out)
	}
}

func TestRenderHistory(t *testing.T) {
	if out := RenderHistory(nil); !strings.Contains(out, "No edits") {
		t.Errorf("Expected empty message, got %q", out)
	}

	out := RenderHistory([]storage.Entry{{
		Operation:   "cut",
		Variant:     "doom",
		Source:      "in.lmp",
		Destination: "out.lmp",
		TicsBefore:  20,
		TicsAfter:   16,
		Removed:     4,
		CreatedAt:   time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC),
	}})
	for _, s := range []string{"Op", "cut", "in.lmp", "out.lmp", "20 -> 16"} {
		if !strings.Contains(out, s) {
			t.Errorf("History table lacks %q:\n%s", s, out)
		}
	}
}
