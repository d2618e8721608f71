// Package config provides YAML-based configuration loading and
// difficulty presets for the sweeper.
package config

// SweeperConfig contains all configuration for the game.
type SweeperConfig struct {
	DefaultPreset string   `yaml:"default_preset"`
	Presets       []Preset `yaml:"presets"`
	Theme         string   `yaml:"theme"`
	PatternsDir   string   `yaml:"patterns_dir"`
	ShowHelp      bool     `yaml:"show_help"`
}

// Preset is a named board size.
type Preset struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mines  int    `yaml:"mines"`
}

// Cells returns the number of cells on a board of this size.
func (p Preset) Cells() int {
	return p.Width * p.Height
}

// Preset returns the preset with the given ID.
func (c SweeperConfig) Preset(id string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetIDs returns preset IDs in configuration order.
func (c SweeperConfig) PresetIDs() []string {
	ids := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		ids[i] = p.ID
	}
	return ids
}
