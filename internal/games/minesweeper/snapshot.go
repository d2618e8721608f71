package minesweeper

import (
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateReady       GameStateType = "ready" // no reveal yet
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
	StateBroken      GameStateType = "broken" // board could not be built
)

// Snapshot captures the visible game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Label     string
	Width     int
	Height    int
	Mines     int
	Flags     int
	Revealed  int
	Remaining int
	Elapsed   int
	Cursor    board.Pos
	Rows      []string // What the player sees, one rune per cell
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Label:   g.Label(),
		Elapsed: g.Elapsed(),
		Cursor:  g.cursor,
	}
	if g.board == nil {
		snap.State = StateBroken
		return snap
	}

	snap.Width = g.board.Width()
	snap.Height = g.board.Height()
	snap.Mines = g.board.MineCount()
	snap.Flags = g.board.FlagCount()
	snap.Revealed = g.board.RevealedCount()
	snap.Remaining = g.board.RemainingMines()
	snap.Rows = g.visibleRows()

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.board.State() == board.Won:
		snap.State = StateWon
	case g.board.State() == board.Lost:
		snap.State = StateLost
	case g.paused:
		snap.State = StatePaused
	case !g.started:
		snap.State = StateReady
	default:
		snap.State = StatePlaying
	}
	return snap
}

// visibleRows renders the board the way the screen shows it, without color.
func (g *Game) visibleRows() []string {
	rows := make([]string, g.board.Height())
	var sb strings.Builder
	for y := range g.board.Height() {
		sb.Reset()
		for x := range g.board.Width() {
			c, _ := g.board.CellAt(x, y)
			r, _ := g.glyph(c)
			sb.WriteRune(r)
		}
		rows[y] = sb.String()
	}
	return rows
}
