// sweeper is a terminal Minesweeper.
//
// Usage:
//
//	sweeper play                 - Play the default preset
//	sweeper menu                 - Pick a board interactively
//	sweeper presets              - List presets and pattern files
//	sweeper show <pattern-file>  - Print a pattern board with its numbers
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Log destination (default: ~/.sweeper/sweeper.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "sweeper",
	Short:         "Minesweeper in your terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Sweeper is a terminal Minesweeper with difficulty presets and
custom board patterns.

Available commands:
  play     - Play a board directly
  menu     - Interactive board picker
  presets  - Show configured presets and pattern files
  show     - Print a pattern board with adjacency numbers

Examples:
  sweeper play
  sweeper play --difficulty expert
  sweeper play --width 20 --height 10 --mines 30
  sweeper play --pattern ./heart.yaml
  sweeper menu
  sweeper show ./heart.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.sweeper/sweeper.log", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(showCmd)
}

// loadConfig loads the configuration and applies its theme.
func loadConfig() (config.SweeperConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	theme, err := tui.ThemeByName(cfg.Theme)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	tui.SetTheme(theme)
	return cfg, nil
}

// openLogger creates the file logger used while the alternate screen owns
// the terminal. The returned closer must be called on exit.
func openLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	path := config.ExpandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "sweeper",
		Level:           level,
	})
	return logger, f, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
