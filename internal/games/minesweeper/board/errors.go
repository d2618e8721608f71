package board

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrGameOver is returned when Reveal or Flag is called on a board
	// that is already Won or Lost. The board is left untouched.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSize is returned when a board is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("invalid board size")

	// ErrInvalidPattern is returned by FromPattern for empty or ragged input.
	ErrInvalidPattern = errors.New("invalid board pattern")

	// ErrCorruptCell signals a cell with neither an adjacency value nor a mine.
	// It indicates a broken invariant and is never expected at runtime.
	ErrCorruptCell = errors.New("corrupt board state")
)

// BoundsError describes an out-of-range coordinate.
// It wraps ErrOutOfBounds so callers can use errors.Is.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("board: (%d, %d) outside %dx%d board", e.X, e.Y, e.Width, e.Height)
}

// Unwrap returns ErrOutOfBounds.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
