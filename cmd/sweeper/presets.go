package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/patterns"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List presets and pattern files",
	Long: `Shows the difficulty presets from the config and the pattern files found in the patterns directory.

With --defaults, prints the built-in configuration file instead. Save it as
~/.sweeper/config.yaml to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

var flagDefaults bool

func init() {
	presetsCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config YAML")
}

func runPresets(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range cfg.Presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-8s  %5s  %s\n", maxIDLen, "ID", "Size", "Mines", "Name")
	fmt.Printf("  %-*s  %-8s  %5s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, p := range cfg.Presets {
		marker := ""
		if p.ID == cfg.DefaultPreset {
			marker = " (default)"
		}
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Printf("  %-*s  %-8s  %5d  %s%s\n", maxIDLen, p.ID, size, p.Mines, p.Name, marker)
	}

	dir := config.ExpandHome(cfg.PatternsDir)
	pats, err := patterns.NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}

	fmt.Println()
	if len(pats) == 0 {
		fmt.Printf("No patterns in %s.\n", dir)
	} else {
		fmt.Printf("Patterns in %s:\n", dir)
		fmt.Println()
		for _, p := range pats {
			w, h := p.Size()
			fmt.Printf("  %-*s  %-8s  %5d  %s\n", maxIDLen, p.ID, fmt.Sprintf("%dx%d", w, h), p.Mines(), p.Name)
		}
	}

	fmt.Println()
	fmt.Println("Modes:")
	for _, info := range registry.List() {
		fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, info.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play --difficulty <id>' or 'sweeper play --pattern <file|id>' to play.")
	return nil
}
