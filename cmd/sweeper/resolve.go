package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/patterns"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// createGame builds a registered game mode, listing the known modes when
// the ID is not registered.
func createGame(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		ids := make([]string, 0)
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("unknown game mode %q (available: %s)", id, strings.Join(ids, ", "))
	}
	return registry.Create(id)
}

// resolvePreset looks up a preset, listing the configured IDs on failure.
func resolvePreset(cfg config.SweeperConfig, id string) (config.Preset, error) {
	p, err := cfg.ResolvePreset(id)
	if errors.Is(err, config.ErrUnknownPreset) {
		return p, fmt.Errorf("%w (available: %s)", err, strings.Join(cfg.PresetIDs(), ", "))
	}
	return p, err
}

// loadPattern accepts either a pattern file path or the ID of a pattern in
// the configured patterns directory.
func loadPattern(cfg config.SweeperConfig, arg string) (patterns.Pattern, error) {
	if _, err := os.Stat(arg); err == nil {
		return patterns.LoadFile(arg)
	}
	p, err := patterns.NewLoader(config.ExpandHome(cfg.PatternsDir)).LoadByID(arg)
	if err != nil {
		return patterns.Pattern{}, fmt.Errorf("pattern %q is not a file or a known pattern ID: %w", arg, err)
	}
	return p, nil
}
