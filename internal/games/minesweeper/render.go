package minesweeper

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

const (
	cellWidth    = 3  // Columns per cell: cursor bracket, glyph, cursor bracket
	hudHeight    = 3  // Title, counters, separator
	footerHeight = 1  // Status line below the board
	minHUDWidth  = 30 // Room for counter, label and clock
)

// Glyphs
const (
	glyphHidden    = '■'
	glyphFlag      = 'F'
	glyphMine      = '*'
	glyphWrongFlag = 'X'
	glyphEmpty     = ' '
)

// numberColors maps adjacency counts 1..8 to colors.
var numberColors = [...]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.buildErr != nil {
		g.renderMessage(dst, "Cannot build board", g.buildErr.Error())
		return
	}
	if g.tooSmall {
		g.renderMessage(dst, "Window too small", "Please resize terminal")
		return
	}

	boardW := g.board.Width()*cellWidth + 2
	boardH := g.board.Height() + 2
	areaW := max(boardW, minHUDWidth)
	areaX := (g.screenW - areaW) / 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, areaX, areaW)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))

	if g.paused {
		// Hide the board so pausing cannot be used to study it
		dst.DrawRect(core.NewRect(boardX+1, boardY+1, boardW-2, boardH-2), '░')
		g.drawOverlay(dst, boardX+boardW/2, boardY+boardH/2, "PAUSED", "Press P to resume")
		return
	}

	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderStatus(dst, areaX, areaW, boardY+boardH)
}

// renderMessage shows a two-line centered message.
func (g *Game) renderMessage(dst *core.Screen, title, hint string) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, title)
	dst.DrawTextCentered(y+1, hint)
}

// renderHUD draws the title, the mine counter and the clock.
func (g *Game) renderHUD(dst *core.Screen, x, w int) {
	title := g.Title()
	dst.DrawTextColored(x+(w-utf8.RuneCountInString(title))/2, 0, title, core.ColorBrightWhite)

	counter := "Mines " + FormatCounter(g.board.RemainingMines())
	dst.DrawTextColored(x, 1, counter, core.ColorBrightRed)

	label := g.Label()
	dst.DrawText(x+(w-utf8.RuneCountInString(label))/2, 1, label)

	clock := "Time " + FormatCounter(g.Elapsed())
	dst.DrawTextColored(x+w-len(clock), 1, clock, core.ColorBrightYellow)

	dst.DrawHLine(x, 2, w, '─')
}

// renderBoard draws every cell with the cursor brackets around the selected one.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	for y := range g.board.Height() {
		for x := range g.board.Width() {
			c, err := g.board.CellAt(x, y)
			if err != nil {
				continue
			}
			r, color := g.glyph(c)
			px := x0 + x*cellWidth
			py := y0 + y
			dst.SetColored(px+1, py, r, color)
		}
	}

	if !g.board.Done() {
		px := x0 + g.cursor.X*cellWidth
		py := y0 + g.cursor.Y
		dst.SetColored(px, py, '[', core.ColorBrightWhite)
		dst.SetColored(px+2, py, ']', core.ColorBrightWhite)
	}
}

// glyph returns the rune and color for a cell. Mines and wrong flags are
// only exposed once the game has ended.
func (g *Game) glyph(c board.Cell) (rune, core.Color) {
	state := g.board.State()

	switch {
	case c.IsRevealed() && c.IsMined():
		return glyphMine, core.ColorBrightRed
	case c.IsRevealed():
		n, err := c.AdjacentMines()
		if err != nil || n == 0 {
			return glyphEmpty, core.ColorDefault
		}
		return rune('0' + n), numberColors[n]
	case c.IsFlagged():
		if state == board.Lost && !c.IsMined() {
			return glyphWrongFlag, core.ColorYellow
		}
		return glyphFlag, core.ColorRed
	case c.IsMined() && state == board.Lost:
		return glyphMine, core.ColorWhite
	case c.IsMined() && state == board.Won:
		return glyphFlag, core.ColorGreen
	default:
		return glyphHidden, core.ColorGray
	}
}

// renderStatus draws the line under the board.
func (g *Game) renderStatus(dst *core.Screen, x, w, y int) {
	var msg string
	color := core.ColorDefault

	switch g.board.State() {
	case board.Lost:
		msg = "BOOM! Press R to restart"
		color = core.ColorBrightRed
	case board.Won:
		msg = fmt.Sprintf("CLEARED in %ds! Press R to restart", g.Elapsed())
		color = core.ColorBrightGreen
	default:
		if !g.started {
			msg = "Reveal a cell to start the clock"
			color = core.ColorGray
		}
	}

	if msg == "" {
		return
	}
	dst.DrawTextColored(x+(w-utf8.RuneCountInString(msg))/2, y, msg, color)
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX, centerY, 0, 0).Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// FormatCounter renders a three-character counter: zero-padded for
// non-negative values up to 999, "-NN" for negatives down to -99.
func FormatCounter(n int) string {
	if n < 0 {
		return fmt.Sprintf("-%02d", min(-n, 99))
	}
	return fmt.Sprintf("%03d", min(n, 999))
}
