package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var (
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagMines      int
	flagPattern    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start playing a board directly.

Controls:
  Arrows/HJKL/WASD - Move cursor
  Space/Enter      - Reveal
  F                - Toggle flag
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Board options:
  --difficulty  beginner (6x6, 5 mines), intermediate (16x16, 40),
                expert (40x16, 99) or any preset from the config
  --width/--height/--mines  custom size, overrides the preset
  --pattern     YAML or text pattern file with a fixed layout, or the ID
                of a pattern in the configured patterns directory

Examples:
  sweeper play
  sweeper play --difficulty expert
  sweeper play --width 12 --height 8 --mines 15
  sweeper play --pattern ./patterns/heart.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preset ID (default from config)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
	playCmd.Flags().StringVar(&flagPattern, "pattern", "", "Pattern file path or pattern ID from the patterns directory")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	gameID := string(minesweeper.ModeClassic)

	switch {
	case flagPattern != "":
		p, err := loadPattern(cfg, flagPattern)
		if err != nil {
			return err
		}
		minesweeper.SetPattern(p)
		gameID = string(minesweeper.ModeCustom)
		logger.Debug("pattern loaded", "id", p.ID, "path", p.FilePath)

	case cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || cmd.Flags().Changed("mines"):
		base, err := resolvePreset(cfg, flagDifficulty)
		if err != nil {
			return err
		}
		w, h, m := base.Width, base.Height, base.Mines
		if flagWidth > 0 {
			w = flagWidth
		}
		if flagHeight > 0 {
			h = flagHeight
		}
		if flagMines > 0 {
			m = flagMines
		}
		preset, err := config.CustomPreset(w, h, m)
		if err != nil {
			return err
		}
		minesweeper.SetPreset(preset)

	default:
		preset, err := resolvePreset(cfg, flagDifficulty)
		if err != nil {
			return err
		}
		minesweeper.SetPreset(preset)
	}

	game, err := createGame(gameID)
	if err != nil {
		return err
	}

	opts := tui.Options{Logger: logger, ShowHelp: cfg.ShowHelp}
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		logger.Error("game loop failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
