package engine

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func newTestGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

func mustSet(t *testing.T, g *Grid, row, col, value int) {
	t.Helper()
	if err := g.SetTile(row, col, value); err != nil {
		t.Fatalf("SetTile(%d, %d, %d): %v", row, col, value, err)
	}
}

func TestNewGridInit(t *testing.T) {
	g := newTestGrid(t, 4, 4)

	if g.Rows() != 4 || g.Cols() != 4 {
		t.Fatalf("size = %dx%d, want 4x4", g.Rows(), g.Cols())
	}

	for row := range g.Rows() {
		for col := range g.Cols() {
			tile, err := g.Tile(row, col)
			if err != nil {
				t.Fatalf("Tile(%d, %d): %v", row, col, err)
			}
			if tile != (Tile{Row: row, Col: col}) {
				t.Errorf("Tile(%d, %d) = %+v, want empty tile at its position", row, col, tile)
			}
		}
	}
}

func TestNewGridInvalidSize(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 4},
		{"zero cols", 4, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.rows, tt.cols); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidSize", tt.rows, tt.cols, err)
			}
		})
	}
}

func TestGridBounds(t *testing.T) {
	g := newTestGrid(t, 3, 5)

	tests := []struct {
		name     string
		row, col int
		ok       bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 2, 4, true},
		{"col past end", 0, 5, false},
		{"row past end", 3, 0, false},
		// Row is within cols and col within rows: a value comparison would let these through.
		{"row beyond rows but below cols", 4, 0, false},
		{"both past end", 3, 5, false},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Tile(tt.row, tt.col)
			setErr := g.SetTile(tt.row, tt.col, 2)
			_, emptyErr := g.IsEmpty(tt.row, tt.col)
			if tt.ok {
				if err != nil || setErr != nil || emptyErr != nil {
					t.Errorf("unexpected errors: %v, %v, %v", err, setErr, emptyErr)
				}
				return
			}
			for _, e := range []error{err, setErr, emptyErr} {
				if !errors.Is(e, ErrOutOfRange) {
					t.Errorf("error = %v, want ErrOutOfRange", e)
				}
			}

			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("error %T is not a *RangeError", err)
			}
			want := RangeError{Row: tt.row, Col: tt.col, Rows: 3, Cols: 5}
			if *rangeErr != want {
				t.Errorf("RangeError = %+v, want %+v", *rangeErr, want)
			}
		})
	}
}

func TestSetTileKeepsPosition(t *testing.T) {
	g := newTestGrid(t, 4, 4)

	mustSet(t, g, 1, 2, 8)
	tile, err := g.Tile(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Tile{Row: 1, Col: 2, Value: 8}); tile != want {
		t.Errorf("Tile(1, 2) = %+v, want %+v", tile, want)
	}

	if empty, _ := g.IsEmpty(1, 2); empty {
		t.Error("IsEmpty(1, 2) = true after SetTile")
	}
	if empty, _ := g.IsEmpty(0, 0); !empty {
		t.Error("IsEmpty(0, 0) = false on a fresh cell")
	}
}

func TestAdjacentTiles(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		expected []Tile
	}{
		{
			name: "center",
			row:  2, col: 2,
			expected: []Tile{{1, 2, 2}, {3, 2, 16}, {2, 1, 4}, {2, 3, 8}},
		},
		{
			name: "corner",
			row:  0, col: 0,
			expected: []Tile{{1, 0, 4}, {0, 1, 2}},
		},
		{
			name: "right edge",
			row:  2, col: 3,
			expected: []Tile{{1, 3, 2}, {3, 3, 4}, {2, 2, 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(t, 4, 4)
			for _, tile := range tt.expected {
				mustSet(t, g, tile.Row, tile.Col, tile.Value)
			}

			neighbors, err := g.AdjacentTiles(tt.row, tt.col)
			if err != nil {
				t.Fatal(err)
			}
			// Order is up, down, left, right.
			if !slices.Equal(neighbors, tt.expected) {
				t.Errorf("AdjacentTiles(%d, %d) = %v, want %v", tt.row, tt.col, neighbors, tt.expected)
			}
		})
	}

	t.Run("out of range", func(t *testing.T) {
		g := newTestGrid(t, 4, 4)
		if _, err := g.AdjacentTiles(9, 9); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("error = %v, want ErrOutOfRange", err)
		}
	})

	t.Run("single cell", func(t *testing.T) {
		g := newTestGrid(t, 1, 1)
		neighbors, err := g.AdjacentTiles(0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(neighbors) != 0 {
			t.Errorf("neighbors = %v, want none", neighbors)
		}
	})
}

func TestEmptyCells(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	if got, want := g.EmptyCells(), []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}; !slices.Equal(got, want) {
		t.Errorf("EmptyCells() = %v, want %v", got, want)
	}

	mustSet(t, g, 0, 1, 2)
	mustSet(t, g, 1, 0, 4)
	if got, want := g.EmptyCells(), []Position{{0, 0}, {1, 1}}; !slices.Equal(got, want) {
		t.Errorf("EmptyCells() = %v, want %v", got, want)
	}

	mustSet(t, g, 0, 0, 2)
	mustSet(t, g, 1, 1, 8)
	if got := g.EmptyCells(); len(got) != 0 {
		t.Errorf("EmptyCells() = %v on a full grid", got)
	}
}

func TestGridValuesAndClear(t *testing.T) {
	g := newTestGrid(t, 2, 3)
	mustSet(t, g, 1, 2, 32)
	mustSet(t, g, 0, 0, 4)

	values := g.Values()
	if want := [][]int{{4, 0, 0}, {0, 0, 32}}; !reflect.DeepEqual(values, want) {
		t.Errorf("Values() = %v, want %v", values, want)
	}
	if g.MaxValue() != 32 {
		t.Errorf("MaxValue() = %d, want 32", g.MaxValue())
	}

	// Values is a snapshot, not a view.
	values[0][0] = 1024
	if tile, _ := g.Tile(0, 0); tile.Value != 4 {
		t.Errorf("editing Values() changed the grid: %d", tile.Value)
	}

	g.Clear()
	if len(g.EmptyCells()) != 6 || g.MaxValue() != 0 {
		t.Errorf("Clear left %v", g.Values())
	}
}
