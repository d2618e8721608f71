package board

import (
	"fmt"
	"math/rand"
	"strings"
)

// MineMarker is the pattern rune that denotes a mine.
const MineMarker = '*'

// State is the overall outcome of a board.
type State int

const (
	InProgress State = iota
	Lost             // a mine was revealed
	Won              // all mines flagged, or only mines remain unrevealed
)

// String returns a stable lowercase name for the state.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal returns true for Won and Lost.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Rand is the random source used to scatter mines.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// globalRand adapts the process-wide math/rand generator to Rand.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Pos is a board coordinate. X grows to the right, Y grows downward.
type Pos struct {
	X, Y int
}

// Board is a Minesweeper grid. Cells are stored row-major: index = x + y*width.
// The mine layout is fixed at construction; only flag/reveal status and the
// derived state change afterwards. A Board is not safe for concurrent use.
type Board struct {
	width     int
	height    int
	mineCount int
	flagCount int
	revealed  int
	state     State
	cells     []Cell
}

// New creates a width x height board with mineCount mines scattered uniformly
// at random. mineCount is clamped to [0, width*height].
// If rng is nil the process-wide math/rand generator is used.
func New(width, height, mineCount int, rng Rand) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board: %dx%d: %w", width, height, ErrInvalidSize)
	}
	if rng == nil {
		rng = globalRand{}
	}

	b := newBoard(width, height, mineCount)
	for i := range b.cells {
		if i < b.mineCount {
			b.cells[i] = CellMined
		} else {
			b.cells[i] = CellEmpty
		}
	}

	// Fisher-Yates: j uniform in [0, i]
	for i := len(b.cells) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	}

	b.calculateAdjacency()
	return b, nil
}

// FromPattern builds a board from equal-length rows, one rune per cell.
// MineMarker denotes a mine, any other rune an empty cell. Row 0 is the top.
func FromPattern(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("board: no rows: %w", ErrInvalidPattern)
	}

	grid := make([][]rune, len(rows))
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("board: empty first row: %w", ErrInvalidPattern)
	}

	mines := 0
	for y, row := range rows {
		grid[y] = []rune(row)
		if len(grid[y]) != width {
			return nil, fmt.Errorf("board: row %d has %d cells, expected %d: %w",
				y, len(grid[y]), width, ErrInvalidPattern)
		}
		for _, r := range grid[y] {
			if r == MineMarker {
				mines++
			}
		}
	}

	b := newBoard(width, len(rows), mines)
	for y, row := range grid {
		for x, r := range row {
			if r == MineMarker {
				b.cells[b.index(x, y)] = CellMined
			} else {
				b.cells[b.index(x, y)] = CellEmpty
			}
		}
	}

	b.calculateAdjacency()
	return b, nil
}

// newBoard allocates storage with the mine count clamped to the cell count.
func newBoard(width, height, mineCount int) *Board {
	n := width * height
	if mineCount < 0 {
		mineCount = 0
	}
	if mineCount > n {
		mineCount = n
	}
	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		state:     InProgress,
		cells:     make([]Cell, n),
	}
}

// calculateAdjacency stores the mined-neighbor count in every non-mined cell.
func (b *Board) calculateAdjacency() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := b.index(x, y)
			if b.cells[i].IsMined() {
				continue
			}
			count := 0
			for _, p := range b.Neighbors(x, y) {
				if b.cells[b.index(p.X, p.Y)].IsMined() {
					count++
				}
			}
			b.cells[i] = adjacencyCell(count)
		}
	}
}

func (b *Board) index(x, y int) int {
	return x + y*b.width
}

// InBounds returns true if (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) checkBounds(x, y int) error {
	if !b.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return nil
}

// Neighbors returns the in-bounds Moore neighbors of (x, y) in row-major
// offset order.
func (b *Board) Neighbors(x, y int) []Pos {
	result := make([]Pos, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !b.InBounds(nx, ny) {
				continue
			}
			result = append(result, Pos{X: nx, Y: ny})
		}
	}
	return result
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mineCount }

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int { return b.flagCount }

// RevealedCount returns the number of revealed cells.
func (b *Board) RevealedCount() int { return b.revealed }

// RemainingMines returns mines minus flags. Negative when over-flagged.
func (b *Board) RemainingMines() int { return b.mineCount - b.flagCount }

// State returns the current game state.
func (b *Board) State() State { return b.state }

// Done returns true once the board is Won or Lost.
func (b *Board) Done() bool { return b.state.Terminal() }

// CellAt returns the cell at (x, y).
func (b *Board) CellAt(x, y int) (Cell, error) {
	if err := b.checkBounds(x, y); err != nil {
		return 0, err
	}
	return b.cells[b.index(x, y)], nil
}

// AdjacentMineCount returns the number of mines around (x, y), or
// MineSentinel if (x, y) is itself a mine.
// Panics if the cell violates the encoding invariant.
func (b *Board) AdjacentMineCount(x, y int) (int, error) {
	c, err := b.CellAt(x, y)
	if err != nil {
		return 0, err
	}
	n, err := c.AdjacentMines()
	if err != nil {
		panic(err)
	}
	return n, nil
}

// Reveal uncovers (x, y). Flagged or already revealed cells are left alone.
// Uncovering a cell with no adjacent mines also uncovers its connected
// zero-region and the numbered cells bordering it; mines are never uncovered
// this way. Returns the cell after the update.
func (b *Board) Reveal(x, y int) (Cell, error) {
	if err := b.checkBounds(x, y); err != nil {
		return 0, err
	}
	i := b.index(x, y)
	if b.Done() {
		return b.cells[i], ErrGameOver
	}

	if b.revealCell(i) && b.cells[i]&CellEmpty != 0 {
		b.flood(x, y)
	}

	b.updateState()
	return b.cells[i], nil
}

// revealCell sets CellRevealed on an unflagged, unrevealed cell.
// Returns false if the cell was left unchanged.
func (b *Board) revealCell(i int) bool {
	c := b.cells[i]
	if c.IsFlagged() || c.IsRevealed() {
		return false
	}
	b.cells[i] = c | CellRevealed
	return true
}

// flood reveals outward from a zero-count cell using an explicit stack.
// The revealed check guarantees each cell is pushed at most once.
func (b *Board) flood(x, y int) {
	stack := []Pos{{X: x, Y: y}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, p := range b.Neighbors(cur.X, cur.Y) {
			i := b.index(p.X, p.Y)
			if b.cells[i].IsMined() {
				continue
			}
			if !b.revealCell(i) {
				continue
			}
			if b.cells[i]&CellEmpty != 0 {
				stack = append(stack, p)
			}
		}
	}
}

// Flag toggles the flag on (x, y). Revealed cells cannot be flagged.
// Returns the cell after the update.
func (b *Board) Flag(x, y int) (Cell, error) {
	if err := b.checkBounds(x, y); err != nil {
		return 0, err
	}
	i := b.index(x, y)
	if b.Done() {
		return b.cells[i], ErrGameOver
	}

	c := b.cells[i]
	if c.IsRevealed() {
		return c, nil
	}
	b.cells[i] = c ^ CellFlagged

	b.updateState()
	return b.cells[i], nil
}

// updateState recomputes the derived counters and the game state from scratch.
func (b *Board) updateState() {
	var revealed, triggered, flaggedCorrectly, flaggedIncorrectly, mines, flags int
	for _, c := range b.cells {
		if c.IsMined() {
			mines++
		}
		switch {
		case c.IsRevealed():
			revealed++
			if c.IsMined() {
				triggered++
			}
		case c.IsFlagged():
			flags++
			if c.IsMined() {
				flaggedCorrectly++
			} else {
				flaggedIncorrectly++
			}
		}
	}

	b.revealed = revealed
	b.flagCount = flags

	switch {
	case triggered > 0:
		b.state = Lost
	case flaggedCorrectly == mines:
		b.state = Won
	case flaggedIncorrectly == 0 && len(b.cells)-revealed == mines:
		b.state = Won
	default:
		b.state = InProgress
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return &clone
}

// Pattern returns the mine layout as rows accepted by FromPattern,
// with MineMarker for mines and spaces elsewhere.
func (b *Board) Pattern() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			if b.cells[b.index(x, y)].IsMined() {
				sb.WriteRune(MineMarker)
			} else {
				sb.WriteRune(' ')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
