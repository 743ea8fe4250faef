package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so
// that no real configuration file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadCustomOverridesKeys(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "variant: heretic\nunits: sec\nconvert:\n  target_version: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Variant != "heretic" {
		t.Errorf("Expected variant heretic, got %q", cfg.Variant)
	}
	if cfg.Units != UnitsSeconds {
		t.Errorf("Expected seconds, got %q", cfg.Units)
	}
	if cfg.Convert.TargetVersion != 6 {
		t.Errorf("Expected target version 6, got %d", cfg.Convert.TargetVersion)
	}
	// Untouched keys keep their defaults.
	if !cfg.Journal.Enabled || cfg.Log.Level != "info" {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestLoadUserAndLocalFiles(t *testing.T) {
	home := isolate(t)

	if err := os.WriteFile(LocalFile, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected local file to apply, got level %q", cfg.Log.Level)
	}

	dir := filepath.Join(home, ".lmpedit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected user file to win, got level %q", cfg.Log.Level)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("units: furlongs\n"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for unknown units")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("convert:\n  target_version: 12\n"), 0o644)
	if _, err := Load(invalid); err == nil {
		t.Error("Expected validation error for target version 12")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty variant", func(c *Config) { c.Variant = "" }, false},
		{"bad units", func(c *Config) { c.Units = "hours" }, false},
		{"version too low", func(c *Config) { c.Convert.TargetVersion = 3 }, false},
		{"zero history", func(c *Config) { c.Journal.HistoryLimit = 0 }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestUnitsConversion(t *testing.T) {
	tests := []struct {
		units          Units
		start, end     int64
		wantS, wantE   int64
		count, wantCnt int64
	}{
		{UnitsTics, 5, 8, 5, 8, 10, 10},
		{UnitsSeconds, 1, 1, 1, 35, 2, 70},
		{UnitsSeconds, 3, 4, 71, 140, 1, 35},
	}

	for _, tt := range tests {
		s, e := tt.units.Range(tt.start, tt.end)
		if s != tt.wantS || e != tt.wantE {
			t.Errorf("%s.Range(%d, %d) = %d, %d, want %d, %d",
				tt.units, tt.start, tt.end, s, e, tt.wantS, tt.wantE)
		}
		if n := tt.units.Count(tt.count); n != tt.wantCnt {
			t.Errorf("%s.Count(%d) = %d, want %d", tt.units, tt.count, n, tt.wantCnt)
		}
	}
}

func TestJournalPath(t *testing.T) {
	home := isolate(t)

	cfg := Default()
	if got, want := cfg.JournalPath(), filepath.Join(home, ".lmpedit", "journal.db"); got != want {
		t.Errorf("JournalPath() = %q, want %q", got, want)
	}
	cfg.Journal.Path = "/tmp/j.db"
	if got := cfg.JournalPath(); got != "/tmp/j.db" {
		t.Errorf("JournalPath() = %q, want explicit path", got)
	}
}
