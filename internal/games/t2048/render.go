package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui2048/internal/core"
)

const (
	cellWidth   = 7 // Width of each cell (including left border)
	cellHeight  = 2 // Height of each cell (including top border)
	hudHeight   = 3 // Title, score and info lines above the board
	minHUDWidth = 26
)

// tileColors maps tile values to their display color.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorGold,
	512:  core.ColorGreen,
	1024: core.ColorBrightGreen,
	2048: core.ColorBrightCyan,
	4096: core.ColorBrightBlue,
	8192: core.ColorMagenta,
}

// TileColor returns the color used to draw a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	if value > 8192 {
		return core.ColorPurple
	}
	return core.ColorDefault
}

// boardSize returns the board's outer width and height in cells.
func (g *Game) boardSize() (int, int) {
	rows, cols := 4, 4
	if g.engine != nil {
		rows, cols = g.engine.Grid().Rows(), g.engine.Grid().Cols()
	}
	return cols*cellWidth + 1, rows*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	board := core.NewRect(0, 0, g.screenW, g.screenH).Centered(boardW, boardH)
	board.Y = hudHeight

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	left := min(board.X, (g.screenW-minHUDWidth)/2)
	right := max(board.Right(), left+minHUDWidth)

	dst.DrawTextCentered(0, g.Title())

	scoreStr := fmt.Sprintf("Score: %d", g.engine.Score())
	dst.DrawText(left, 1, scoreStr)
	bestStr := fmt.Sprintf("Best: %d", g.engine.BestScore())
	dst.DrawText(right-len(bestStr), 1, bestStr)

	var infoStr string
	switch g.mode {
	case ModeCampaign:
		infoStr = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.currentTarget)
	case ModeClassic:
		infoStr = fmt.Sprintf("Target: %d  Max: %d", g.currentTarget, g.engine.Grid().MaxValue())
	default:
		infoStr = fmt.Sprintf("Max: %d  Moves: %d", g.engine.Grid().MaxValue(), g.engine.Moves())
	}
	dst.DrawText(left, 2, infoStr)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	values := g.engine.Grid().Values()
	rows, cols := len(values), len(values[0])

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			dst.SetCell(px, py, junction(x, y, cols, rows), core.ColorGray)

			if x < cols {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < rows {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for y, row := range values {
		for x, val := range row {
			if val == 0 {
				continue
			}
			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			cellX := board.X + x*cellWidth + 1
			cellY := board.Y + y*cellHeight + 1
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// junction picks the box-drawing rune for a grid line crossing.
func junction(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won && g.mode == ModeCampaign:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", g.engine.Score()), "Press R to restart")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.engine.Grid().MaxValue())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | P: Pause | R: Restart | Q: Quit"
}
