package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Variant: "doom",
		Units:   UnitsTics,
		Convert: ConvertConfig{
			TargetVersion: 9,
		},
		Journal: JournalConfig{
			Enabled:      true,
			HistoryLimit: 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
