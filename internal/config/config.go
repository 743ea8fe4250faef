// Package config provides YAML-based configuration loading for lmpedit.
package config

import (
	"fmt"
)

// Config contains all settings of the command line tool.
type Config struct {
	Variant string        `yaml:"variant"`
	Units   Units         `yaml:"units"`
	Convert ConvertConfig `yaml:"convert"`
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`
}

// ConvertConfig defines defaults for the convert command.
type ConvertConfig struct {
	TargetVersion int `yaml:"target_version"` // minor version, 4-9
}

// JournalConfig defines where completed edits are recorded.
type JournalConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Path         string `yaml:"path"` // empty selects the default location
	HistoryLimit int    `yaml:"history_limit"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if c.Variant == "" {
		return fmt.Errorf("config: variant must be set")
	}
	if c.Units != UnitsTics && c.Units != UnitsSeconds {
		return fmt.Errorf("config: unknown units %q (want %q or %q)", c.Units, UnitsTics, UnitsSeconds)
	}
	if v := c.Convert.TargetVersion; v < 4 || v > 9 {
		return fmt.Errorf("config: convert.target_version must be 4-9, got %d", v)
	}
	if c.Journal.HistoryLimit < 1 {
		return fmt.Errorf("config: journal.history_limit must be positive, got %d", c.Journal.HistoryLimit)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

// JournalPath returns the journal database location, resolving the
// default under the user's home directory.
func (c Config) JournalPath() string {
	if c.Journal.Path != "" {
		return c.Journal.Path
	}
	return userConfigPath("journal.db")
}
