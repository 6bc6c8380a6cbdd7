package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Vertical reports whether the direction moves tiles along columns.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}
