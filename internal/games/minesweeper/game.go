// Package minesweeper adapts the board engine to the platform game loop:
// a cursor driven by abstract actions, a mine counter and a clock.
package minesweeper

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/patterns"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // random mines sized by a preset
	ModeCustom  Mode = "custom"  // fixed layout from a pattern file
)

// Game implements Minesweeper on top of board.Board.
type Game struct {
	mode    Mode
	rng     *rand.Rand
	tick    uint64
	preset  config.Preset
	pattern *patterns.Pattern

	board    *board.Board
	buildErr error
	cursor   board.Pos

	// Clock
	tickRate     int
	started      bool // set by the first reveal
	elapsedTicks int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	selectedPreset  = defaultPreset()
	selectedPattern *patterns.Pattern
)

func defaultPreset() config.Preset {
	p, _ := config.DefaultConfig().ResolvePreset("")
	return p
}

// SetPreset selects the board size used by classic games created afterwards.
func SetPreset(p config.Preset) {
	selectedPreset = p
}

// GetPreset returns the currently selected preset.
func GetPreset() config.Preset {
	return selectedPreset
}

// SetPattern selects the layout used by custom games created afterwards.
func SetPattern(p patterns.Pattern) {
	selectedPattern = &p
}

// ClearPattern drops the selected layout.
func ClearPattern() {
	selectedPattern = nil
}

// New creates a classic game with randomly placed mines.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewCustom creates a game played on the selected pattern.
// Without a selected pattern it behaves like a classic game.
func NewCustom() *Game {
	return &Game{mode: ModeCustom}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeCustom), func() registry.Game {
		return NewCustom()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCustom {
		return "Minesweeper (Custom)"
	}
	return "Minesweeper"
}

// Label returns the name of the current layout (preset or pattern).
func (g *Game) Label() string {
	if g.pattern != nil {
		return g.pattern.Name
	}
	return g.preset.Name
}

// Reset builds a fresh board. Classic games reshuffle mines from cfg.Seed;
// custom games rebuild the same pattern.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.started = false
	g.elapsedTicks = 0
	g.paused = false

	g.preset = selectedPreset
	g.pattern = nil
	if g.mode == ModeCustom && selectedPattern != nil {
		p := *selectedPattern
		g.pattern = &p
	}

	if g.pattern != nil {
		g.board, g.buildErr = g.pattern.Board()
	} else {
		g.board, g.buildErr = board.New(g.preset.Width, g.preset.Height, g.preset.Mines, g.rng)
	}

	if g.board != nil {
		// Start in the middle of the board
		g.cursor = board.Pos{X: g.board.Width() / 2, Y: g.board.Height() / 2}
	}

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	if g.board == nil {
		g.tooSmall = false
		return
	}
	minW := max(g.board.Width()*cellWidth+2, minHUDWidth)
	minH := g.board.Height() + 2 + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.buildErr != nil {
		return core.StepResult{State: g.State(), Err: g.buildErr}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.running() {
		g.elapsedTicks++
	}

	// Pause only freezes a live game
	if in.Has(core.ActionPause) && !g.board.Done() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is performed by the platform once the game is over
	if g.board.Done() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	var err error
	switch {
	case in.Has(core.ActionReveal):
		_, err = g.board.Reveal(g.cursor.X, g.cursor.Y)
		g.started = true
	case in.Has(core.ActionFlag):
		_, err = g.board.Flag(g.cursor.X, g.cursor.Y)
	}
	if errors.Is(err, board.ErrGameOver) {
		err = nil
	}

	return core.StepResult{State: g.State(), Err: err}
}

// moveCursor applies directional input, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	dx, dy := 0, 0
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.board.Width()-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.board.Height()-1)
}

// running reports whether the clock advances this tick.
func (g *Game) running() bool {
	return g.started && !g.paused && !g.board.Done()
}

// Elapsed returns whole seconds on the game clock.
func (g *Game) Elapsed() int {
	if g.tickRate <= 0 {
		return 0
	}
	return g.elapsedTicks / g.tickRate
}

// Cursor returns the cursor position.
func (g *Game) Cursor() board.Pos {
	return g.cursor
}

// Board returns the underlying board; nil if it could not be built.
func (g *Game) Board() *board.Board {
	return g.board
}

// State returns the current game state. Score is the elapsed time in seconds.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:  g.Elapsed(),
		Paused: g.paused || g.tooSmall,
	}
	if g.board != nil {
		st.GameOver = g.board.Done()
		st.Won = g.board.State() == board.Won
	}
	return st
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL/WASD: Move | Space: Reveal | F: Flag | P: Pause | R: Restart | Q: Quit"
}

// Resize adapts to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}
