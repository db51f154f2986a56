package match3

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/happymatch/internal/core"
	"github.com/vovakirdan/happymatch/internal/games/match3/board"
)

const (
	cellWidth  = 4 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3
	minWidth   = 30
)

var blockGlyphs = map[board.BlockType]rune{
	board.Red:    '♥',
	board.Blue:   '●',
	board.Green:  '♣',
	board.Yellow: '◆',
	board.Purple: '★',
	board.Pink:   '✿',
}

var blockColors = map[board.BlockType]core.Color{
	board.Red:    core.ColorBrightRed,
	board.Blue:   core.ColorBrightBlue,
	board.Green:  core.ColorBrightGreen,
	board.Yellow: core.ColorBrightYellow,
	board.Purple: core.ColorPurple,
	board.Pink:   core.ColorPink,
}

// minScreenSize is the board plus HUD, one notification row and the
// controls line.
func (g *Game) minScreenSize() (w, h int) {
	boardW := g.cfg.Board.Cols*cellWidth + 1
	boardH := g.cfg.Board.Rows*cellHeight + 1
	return core.Max(boardW, minWidth), hudHeight + 1 + boardH + 3
}

// layout returns the board rectangle on screen.
func (g *Game) layout() core.Rect {
	boardW := g.cfg.Board.Cols*cellWidth + 1
	boardH := g.cfg.Board.Rows*cellHeight + 1
	return core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)
}

// cellAt maps a screen position to a board cell. Grid lines map to nothing.
func (g *Game) cellAt(p core.Point) (board.Coord, bool) {
	r := g.layout()
	dx, dy := p.X-r.X, p.Y-r.Y
	if dx <= 0 || dy <= 0 || dx%cellWidth == 0 || dy%cellHeight == 0 {
		return board.Coord{}, false
	}
	c := board.At(dy/cellHeight, dx/cellWidth)
	if c.Row >= g.cfg.Board.Rows || c.Col >= g.cfg.Board.Cols {
		return board.Coord{}, false
	}
	return c, true
}

// cellOrigin returns the screen position of a cell's first content column.
func (g *Game) cellOrigin(c board.Coord) core.Point {
	r := g.layout()
	return core.Point{X: r.X + c.Col*cellWidth + 1, Y: r.Y + c.Row*cellHeight + 1}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	r := g.layout()
	g.renderHUD(dst, r)
	g.renderGrid(dst, r)
	g.renderBlocks(dst)
	g.renderToasts(dst, r)
	dst.DrawTextCenteredWithColor(g.screenH-1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, r)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	w, h := g.minScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
}

// renderHUD draws the title, score and level info.
func (g *Game) renderHUD(dst *core.Screen, r core.Rect) {
	title := "HAPPY MATCH"
	if g.mode == ModeMini {
		title = "HAPPY MATCH mini"
	}
	dst.DrawTextCenteredWithColor(0, title, core.ColorBrightMagenta)

	dst.DrawText(r.X, 1, fmt.Sprintf("Score: %d", g.shownScore))
	levelStr := fmt.Sprintf("Level %d/%d", g.level, LevelCount(g.cfg.Scoring.LevelThresholds))
	drawRight(dst, r, 1, levelStr)

	moves := 0
	if g.engine != nil {
		moves = g.engine.Stats().Moves
	}
	dst.DrawText(r.X, 2, fmt.Sprintf("Moves: %d", moves))

	nextStr := "Top level"
	if next, ok := NextThreshold(g.level, g.cfg.Scoring.LevelThresholds); ok {
		nextStr = fmt.Sprintf("Next: %d", next)
	}
	drawRight(dst, r, 2, nextStr)

	if f, ok := g.currentFrame(); ok && f.kind == frameFlash && f.cascade > 1 {
		dst.DrawTextCenteredWithColor(2, fmt.Sprintf("Cascade x%d", f.cascade), core.ColorBrightCyan)
	}
}

func drawRight(dst *core.Screen, r core.Rect, y int, text string) {
	x := r.Right() - utf8.RuneCountInString(text)
	if x < r.X {
		x = r.X
	}
	dst.DrawText(x, y, text)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, r core.Rect) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols

	for y := 0; y < rows+1; y++ {
		for x := 0; x < cols+1; x++ {
			px := r.X + x*cellWidth
			py := r.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetWithColor(px, py, corner, core.ColorGray)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetWithColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetWithColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderBlocks draws either the replay frame or the live board.
func (g *Game) renderBlocks(dst *core.Screen) {
	if g.engine == nil {
		return
	}

	f, replaying := g.currentFrame()
	var cells [][]board.BlockType
	var selection *board.Coord
	if replaying {
		cells = f.cells
	} else {
		snap := g.engine.Snapshot()
		cells = snap.Cells
		selection = snap.Selection
	}

	hinted := markSet(g.hint...)

	for row, line := range cells {
		for col, bt := range line {
			c := board.At(row, col)
			o := g.cellOrigin(c)

			glyph := blockGlyphs[bt]
			color := blockColors[bt]
			left, right := ' ', ' '
			sideColor := core.ColorBrightWhite

			switch {
			case replaying && f.marked[c] && f.kind == frameFlash:
				if g.blinkOn() {
					glyph, color = '✸', core.ColorBrightWhite
				} else {
					glyph = ' '
				}
			case replaying && f.marked[c]:
				left, right = '[', ']'
			case selection != nil && *selection == c:
				left, right = '[', ']'
			case hinted[c]:
				left, right = '<', '>'
				sideColor = core.ColorBrightYellow
			}

			cursor := !replaying && !g.gameOver && c == g.cursor
			dst.SetCell(o.X, o.Y, core.Cell{Rune: left, Color: sideColor, Reverse: cursor})
			dst.SetCell(o.X+1, o.Y, core.Cell{Rune: glyph, Color: color, Reverse: cursor})
			dst.SetCell(o.X+2, o.Y, core.Cell{Rune: right, Color: sideColor, Reverse: cursor})
		}
	}
}

// renderToasts draws the newest notifications between the board and the
// controls line.
func (g *Game) renderToasts(dst *core.Screen, r core.Rect) {
	top := r.Bottom()
	bottom := g.screenH - 2
	y := bottom
	for i := len(g.toasts) - 1; i >= 0 && y >= top; i-- {
		color := core.ColorBrightYellow
		if g.toasts[i].text == toastInvalid {
			color = core.ColorBrightRed
		}
		dst.DrawTextCenteredWithColor(y, g.toasts[i].text, color)
		y--
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, r core.Rect) {
	centerX := r.X + r.W/2
	centerY := r.Y + r.H/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		stats := g.engine.Stats()
		g.drawOverlay(dst, centerX, centerY,
			"NO MORE MOVES",
			fmt.Sprintf("Score: %d  Level: %d", g.engine.Score(), g.level),
			fmt.Sprintf("Best cascade: %d", stats.LongestCascade),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD move | Enter select | Esc cancel | H hint | P pause | R new | Q quit"
}
