package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/patterns"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets  int
	resized [2]int
	cfg     core.RuntimeConfig
	frames  []core.InputFrame
	state   core.GameState
	err     error
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state, Err: g.err}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 9}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelForwardsActions(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	if g.resets != 1 {
		t.Fatalf("resets = %d, expected 1", g.resets)
	}

	m = update(t, m, runeKey('f'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})

	if len(g.frames) != 1 {
		t.Fatalf("frames = %d, expected 1", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionFlag) || !g.frames[0].Has(core.ActionLeft) {
		t.Errorf("frame = %v, expected Flag and Left", g.frames[0].Actions)
	}

	// Input is cleared between ticks
	update(t, m, TickMsg{})
	if !g.frames[1].Empty() {
		t.Errorf("second frame = %v, expected empty", g.frames[1].Actions)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 1 || g.frames[0].Has(core.ActionRestart) {
		t.Fatal("restart during play should be ignored")
	}

	g.state = core.GameState{GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 after restart", g.resets)
	}
	if g.cfg.Seed == 9 {
		t.Error("restart should pick a new seed")
	}
	if m.State().GameOver {
		t.Error("state should be reset after restart")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testRuntime(), Options{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Errorf("resets = %d, expected resize without reset", g.resets)
	}
	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v, expected [100 40]", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelHelpFooter(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), Options{ShowHelp: true})
	m.Init()

	if g.cfg.ScreenH >= 24 {
		t.Errorf("game height = %d, expected room for the footer", g.cfg.ScreenH)
	}
	short := g.cfg.ScreenH

	view := m.View()
	if !strings.Contains(view, "fake") || !strings.Contains(view, "reveal") {
		t.Errorf("View() = %q, expected game and help", view)
	}

	m = update(t, m, runeKey('?'))
	if g.resized[1] >= short {
		t.Errorf("full help height = %d, expected less than %d", g.resized[1], short)
	}
	if !strings.Contains(m.View(), "restart") {
		t.Error("full help should list restart")
	}
}

func TestModelLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	g := &fakeGame{err: errors.New("boom")}
	m := NewModel(g, testRuntime(), Options{Logger: logger})
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	g.state = core.GameState{GameOver: true, Won: true, Score: 12}
	update(t, m, TickMsg{})

	out := buf.String()
	if !strings.Contains(out, "game started") {
		t.Errorf("log = %q, expected game started", out)
	}
	if strings.Count(out, "step failed") != 1 {
		t.Errorf("log = %q, expected a single step failure", out)
	}
	if !strings.Contains(out, "game won") || !strings.Contains(out, "seconds=12") {
		t.Errorf("log = %q, expected game won with seconds", out)
	}
}

func TestModelLogsInputAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := &fakeGame{}
	m := NewModel(g, testRuntime(), Options{Logger: logger})
	m.Init()

	m = update(t, m, TickMsg{})
	if strings.Contains(buf.String(), "input") {
		t.Errorf("log = %q, expected no input line for an empty frame", buf.String())
	}

	m = update(t, m, runeKey('f'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	update(t, m, TickMsg{})
	if out := buf.String(); !strings.Contains(out, "input") || !strings.Contains(out, "Up") || !strings.Contains(out, "Flag") {
		t.Errorf("log = %q, expected input with Up and Flag", out)
	}
}

func TestModelPlaysMinesweeper(t *testing.T) {
	minesweeper.SetPattern(patterns.Pattern{ID: "t", Name: "T", Rows: []string{"*  ", "   ", "   "}})
	t.Cleanup(minesweeper.ClearPattern)

	g := minesweeper.NewCustom()
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('f'))
	m = update(t, m, TickMsg{})

	if !m.State().GameOver || !m.State().Won {
		t.Errorf("State() = %+v, expected won after flagging the only mine", m.State())
	}
	if !strings.Contains(m.View(), "CLEARED") {
		t.Error("View should show the win message")
	}
}
