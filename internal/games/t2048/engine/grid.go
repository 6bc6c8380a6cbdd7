// Package engine implements the 2048 grid transformation engine: a
// rectangular board of power-of-two tiles that slide and merge toward one
// edge, plus the game orchestration (scoring, spawning, win and loss).
//
// The package performs no I/O and knows nothing about rendering, input or
// timing. It is driven by a single goroutine and is not safe for concurrent use.
package engine

// Tile is one cell of the grid. Value 0 means empty; otherwise it is a
// power of two. Row and Col always match the tile's position in storage.
type Tile struct {
	Row   int
	Col   int
	Value int
}

// Empty reports whether the tile holds no value.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Grid is a fixed rows x cols board stored row-major in a single slice.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewGrid creates an empty grid. Both dimensions must be at least 1.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidSize
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
	for row := range rows {
		for col := range cols {
			g.tiles[g.index(row, col)] = Tile{Row: row, Col: col}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a validated position to a storage index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// valid checks both coordinates independently.
func (g *Grid) valid(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) rangeError(row, col int) error {
	return &RangeError{Row: row, Col: col, Rows: g.rows, Cols: g.cols}
}

// Tile returns the tile at (row, col).
func (g *Grid) Tile(row, col int) (Tile, error) {
	if !g.valid(row, col) {
		return Tile{}, g.rangeError(row, col)
	}
	return g.tiles[g.index(row, col)], nil
}

// SetTile rewrites the value at (row, col). The tile keeps its position.
func (g *Grid) SetTile(row, col, value int) error {
	if !g.valid(row, col) {
		return g.rangeError(row, col)
	}
	g.tiles[g.index(row, col)].Value = value
	return nil
}

// IsEmpty reports whether the cell at (row, col) holds no tile.
func (g *Grid) IsEmpty(row, col int) (bool, error) {
	t, err := g.Tile(row, col)
	if err != nil {
		return false, err
	}
	return t.Empty(), nil
}

// AdjacentTiles returns the up, down, left and right neighbours of
// (row, col), skipping those that fall off the board.
func (g *Grid) AdjacentTiles(row, col int) ([]Tile, error) {
	if !g.valid(row, col) {
		return nil, g.rangeError(row, col)
	}

	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	neighbors := make([]Tile, 0, len(offsets))
	for _, off := range offsets {
		r, c := row+off[0], col+off[1]
		if g.valid(r, c) {
			neighbors = append(neighbors, g.tiles[g.index(r, c)])
		}
	}
	return neighbors, nil
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Position {
	var cells []Position
	for _, t := range g.tiles {
		if t.Empty() {
			cells = append(cells, Position{Row: t.Row, Col: t.Col})
		}
	}
	return cells
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.tiles {
		g.tiles[i].Value = 0
	}
}

// Values returns the tile values as a fresh rows x cols matrix.
func (g *Grid) Values() [][]int {
	values := make([][]int, g.rows)
	for row := range g.rows {
		values[row] = make([]int, g.cols)
		for col := range g.cols {
			values[row][col] = g.tiles[g.index(row, col)].Value
		}
	}
	return values
}

// MaxValue returns the highest tile value on the board.
func (g *Grid) MaxValue() int {
	maxVal := 0
	for _, t := range g.tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}
