package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/patterns"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from a menu",
	Long: `Start in interactive menu mode.

The menu lists the configured presets followed by the pattern files found
in the patterns directory. After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected board
  Q/Esc        - Quit

Examples:
  sweeper menu
  sweeper menu --config ./sweeper.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	pats, err := patterns.NewLoader(config.ExpandHome(cfg.PatternsDir)).LoadAll()
	if err != nil {
		logger.Warn("could not load patterns", "dir", cfg.PatternsDir, "err", err)
	}
	items := tui.BuildMenuItems(cfg, pats)

	rc := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(items, rc)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return fmt.Errorf("running menu: %w", err)
		}

		// Update config with any size changes
		rc = result.Config
		if result.Quit {
			return nil
		}

		item := result.Item
		item.Apply()

		game, err := createGame(item.GameID())
		if err != nil {
			logger.Error("creating game", "err", err)
			return err
		}

		logger.Info("board selected", "board", item.Title)
		opts := tui.Options{Logger: logger, ShowHelp: cfg.ShowHelp}
		if err := tui.Run(game, rc, opts); err != nil {
			logger.Error("game loop failed", "err", err)
			return fmt.Errorf("running game: %w", err)
		}
	}
}
