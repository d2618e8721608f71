// Package board implements the Minesweeper board engine: mine placement,
// adjacency counts, reveal/flag state and win/loss evaluation.
// It has no external dependencies so it can be driven by any front end.
package board

import (
	"fmt"
	"math/bits"
)

// Cell packs a grid position's contents into one value.
//
// Bits 0..8 hold the adjacency count as a one-hot field (bit n set means n
// adjacent mines). A mined cell carries CellMined instead of an adjacency bit.
// CellFlagged and CellRevealed are independent status bits.
type Cell uint16

const (
	// CellEmpty is a non-mined cell with no adjacent mines.
	CellEmpty Cell = 1 << 0

	// CellMined marks a mine. Never combined with an adjacency bit.
	CellMined Cell = 1 << 9

	// CellFlagged marks a cell the player believes is mined.
	CellFlagged Cell = 1 << 10

	// CellRevealed marks an uncovered cell.
	CellRevealed Cell = 1 << 11

	adjacencyMask Cell = 1<<9 - 1
	contentMask   Cell = adjacencyMask | CellMined
)

// MineSentinel is the value AdjacentMines reports for a mined cell.
const MineSentinel = 9

// adjacencyCell returns the adjacency bit for n neighboring mines (0..8).
func adjacencyCell(n int) Cell {
	return CellEmpty << n
}

// IsMined returns true if the cell holds a mine.
func (c Cell) IsMined() bool {
	return c&CellMined != 0
}

// IsFlagged returns true if the cell carries a flag.
func (c Cell) IsFlagged() bool {
	return c&CellFlagged != 0
}

// IsRevealed returns true if the cell has been uncovered.
func (c Cell) IsRevealed() bool {
	return c&CellRevealed != 0
}

// AdjacentMines returns the number of mined neighbors (0..8),
// or MineSentinel if the cell itself is mined.
// Returns an error wrapping ErrCorruptCell if no content bit is set.
func (c Cell) AdjacentMines() (int, error) {
	content := c & contentMask
	if content == 0 {
		return 0, fmt.Errorf("board: cell %#04x: %w", uint16(c), ErrCorruptCell)
	}
	// Lowest set bit; the adjacency field is one-hot and excludes CellMined.
	return bits.TrailingZeros16(uint16(content)), nil
}

// String returns a compact debug form, e.g. "3", "*", "3+R", "*+F".
func (c Cell) String() string {
	var s string
	switch n, err := c.AdjacentMines(); {
	case err != nil:
		s = "?"
	case n == MineSentinel:
		s = "*"
	default:
		s = fmt.Sprintf("%d", n)
	}
	if c.IsRevealed() {
		s += "+R"
	}
	if c.IsFlagged() {
		s += "+F"
	}
	return s
}
