package core

// Color is a foreground color for a screen cell. The front end maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette. Gold, Pink and Purple are reserved for the largest tiles.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorGold
	ColorPink
	ColorPurple

	colorCount
)

// ColorCount is the number of palette entries.
const ColorCount = int(colorCount)
