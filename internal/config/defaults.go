package config

import (
	_ "embed"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// DefaultConfig returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultConfig() SweeperConfig {
	return SweeperConfig{
		DefaultPreset: string(DifficultyBeginner),
		Presets: []Preset{
			{ID: string(DifficultyBeginner), Name: "Beginner", Width: 6, Height: 6, Mines: 5},
			{ID: string(DifficultyIntermediate), Name: "Intermediate", Width: 16, Height: 16, Mines: 40},
			{ID: string(DifficultyExpert), Name: "Expert", Width: 40, Height: 16, Mines: 99},
		},
		Theme:       "default",
		PatternsDir: "~/.sweeper/patterns",
		ShowHelp:    true,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSweeperYAML
}
