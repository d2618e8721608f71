package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

var showCmd = &cobra.Command{
	Use:   "show <pattern-file|id>",
	Short: "Print a pattern board with adjacency numbers",
	Long: `Loads a pattern file and prints the fully uncovered board:
'*' for mines, '.' for cells without neighbors and digits elsewhere.

Examples:
  sweeper show ./patterns/heart.yaml
  sweeper show ./patterns/corner.txt
  sweeper show heart`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := loadPattern(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := p.Board()
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s): %dx%d, %d mines\n\n", p.Name, p.ID, b.Width(), b.Height(), b.MineCount())
	for _, row := range showRows(b) {
		fmt.Println("  " + row)
	}
	return nil
}

// showRows renders every cell of b as if revealed.
func showRows(b *board.Board) []string {
	rows := make([]string, b.Height())
	var sb strings.Builder
	for y := range b.Height() {
		sb.Reset()
		for x := range b.Width() {
			n, err := b.AdjacentMineCount(x, y)
			switch {
			case err != nil:
				sb.WriteByte('?')
			case n == board.MineSentinel:
				sb.WriteRune(board.MineMarker)
			case n == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + n))
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
