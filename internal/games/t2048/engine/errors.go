package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a position lies outside the grid.
	ErrOutOfRange = errors.New("engine: position out of range")

	// ErrInvalidSize is returned when a grid is created with a non-positive dimension.
	ErrInvalidSize = errors.New("engine: invalid grid size")

	// ErrOccupied is returned when inserting into a cell that already holds a tile.
	ErrOccupied = errors.New("engine: cell is not empty")

	// ErrInvalidValue is returned for tile values that are not a power of two >= 2.
	ErrInvalidValue = errors.New("engine: invalid tile value")
)

// RangeError reports an access outside [0,rows)x[0,cols).
// It matches ErrOutOfRange via errors.Is.
type RangeError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("engine: %d x %d is out of range, grid size (%d, %d)", e.Row, e.Col, e.Rows, e.Cols)
}

// Is lets errors.Is(err, ErrOutOfRange) succeed.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
