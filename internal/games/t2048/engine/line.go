package engine

import "fmt"

// line is a 1-D view over one row or column of the grid's backing slice.
// Slot 0 is the edge tiles travel toward; slot i maps to start + i*step.
type line struct {
	start int
	step  int
	n     int
}

func (l line) at(slot int) int {
	return l.start + slot*l.step
}

// line builds the view for row (horizontal moves) or column (vertical
// moves) index, oriented so that slot 0 is the destination edge.
func (g *Grid) line(dir Direction, index int) line {
	switch dir {
	case DirLeft:
		return line{start: g.index(index, 0), step: 1, n: g.cols}
	case DirRight:
		return line{start: g.index(index, g.cols-1), step: -1, n: g.cols}
	case DirUp:
		return line{start: g.index(0, index), step: g.cols, n: g.rows}
	case DirDown:
		return line{start: g.index(g.rows-1, index), step: -g.cols, n: g.rows}
	default:
		panic(fmt.Sprintf("engine: invalid direction %d", dir))
	}
}

// lineCount returns how many lines a move in dir collapses.
func (g *Grid) lineCount(dir Direction) int {
	if dir.Vertical() {
		return g.cols
	}
	return g.rows
}

// CollapseLine slides and merges one row (Left/Right) or one column
// (Up/Down) toward the edge named by dir. It returns the sum of merged
// values and whether any cell changed. A tile merges at most once per call.
//
// An unknown direction is a programming error and panics.
func (g *Grid) CollapseLine(dir Direction, index int) (score int, moved bool, err error) {
	if !dir.Valid() {
		panic(fmt.Sprintf("engine: invalid direction %d", dir))
	}
	if index < 0 || index >= g.lineCount(dir) {
		if dir.Vertical() {
			return 0, false, g.rangeError(0, index)
		}
		return 0, false, g.rangeError(index, 0)
	}

	score, moved = g.collapse(g.line(dir, index))
	return score, moved, nil
}

// collapse runs the slide+merge scan over l, starting at the destination
// edge. writePos is the next slot to receive a tile; lastMerge is the slot
// that absorbed the most recent merge and may not merge again.
func (g *Grid) collapse(l line) (score int, moved bool) {
	writePos := 0
	lastMerge := -1

	for slot := range l.n {
		src := l.at(slot)
		value := g.tiles[src].Value
		if value == 0 {
			continue
		}

		if writePos > 0 {
			target := l.at(writePos - 1)
			if g.tiles[target].Value == value && lastMerge != writePos-1 {
				g.tiles[src].Value = 0
				g.tiles[target].Value *= 2
				score += g.tiles[target].Value
				lastMerge = writePos - 1
				moved = true
				continue
			}
		}

		if slot != writePos {
			g.tiles[l.at(writePos)].Value = value
			g.tiles[src].Value = 0
			moved = true
		}
		writePos++
	}

	return score, moved
}
