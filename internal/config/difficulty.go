package config

import (
	"errors"
	"fmt"
)

// DifficultyPreset names one of the built-in board sizes.
type DifficultyPreset string

const (
	DifficultyBeginner     DifficultyPreset = "beginner"
	DifficultyIntermediate DifficultyPreset = "intermediate"
	DifficultyExpert       DifficultyPreset = "expert"
	DifficultyCustom       DifficultyPreset = "custom"
)

// Board size limits for presets and custom games.
const (
	MinSize = 2
	MaxSize = 99
)

var (
	// ErrUnknownPreset is returned when a preset ID is not configured.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidPreset is returned for sizes outside the supported limits.
	ErrInvalidPreset = errors.New("invalid preset")
)

// ValidatePreset checks board dimensions and mine count.
// Mines must leave at least one safe cell.
func ValidatePreset(p Preset) error {
	if p.Width < MinSize || p.Width > MaxSize {
		return fmt.Errorf("config: preset %q width %d not in [%d, %d]: %w", p.ID, p.Width, MinSize, MaxSize, ErrInvalidPreset)
	}
	if p.Height < MinSize || p.Height > MaxSize {
		return fmt.Errorf("config: preset %q height %d not in [%d, %d]: %w", p.ID, p.Height, MinSize, MaxSize, ErrInvalidPreset)
	}
	if p.Mines < 1 || p.Mines >= p.Cells() {
		return fmt.Errorf("config: preset %q mines %d not in [1, %d]: %w", p.ID, p.Mines, p.Cells()-1, ErrInvalidPreset)
	}
	return nil
}

// Validate checks every preset, ID uniqueness and the default preset.
func (c SweeperConfig) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("config: no presets defined: %w", ErrInvalidPreset)
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("config: preset without id: %w", ErrInvalidPreset)
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q: %w", p.ID, ErrInvalidPreset)
		}
		seen[p.ID] = true

		if err := ValidatePreset(p); err != nil {
			return err
		}
	}

	if _, ok := c.Preset(c.DefaultPreset); !ok {
		return fmt.Errorf("config: default preset %q: %w", c.DefaultPreset, ErrUnknownPreset)
	}
	return nil
}

// CustomPreset builds and validates a preset from explicit dimensions.
func CustomPreset(width, height, mines int) (Preset, error) {
	p := Preset{
		ID:     string(DifficultyCustom),
		Name:   fmt.Sprintf("Custom %dx%d", width, height),
		Width:  width,
		Height: height,
		Mines:  mines,
	}
	if err := ValidatePreset(p); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// ResolvePreset picks the preset for a game.
// An empty id selects the configured default.
func (c SweeperConfig) ResolvePreset(id string) (Preset, error) {
	if id == "" {
		id = c.DefaultPreset
	}
	p, ok := c.Preset(id)
	if !ok {
		return Preset{}, fmt.Errorf("config: preset %q: %w", id, ErrUnknownPreset)
	}
	return p, nil
}
