package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui2048/internal/core"
)

// ansiCodes gives the 256-color code for each palette entry. Empty means the
// terminal default.
var ansiCodes = [core.ColorCount]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorGold:          "220",
	core.ColorPink:          "213",
	core.ColorPurple:        "135",
}

var colorStyles = buildStyles()

func buildStyles() [core.ColorCount]lipgloss.Style {
	var styles [core.ColorCount]lipgloss.Style
	for c, code := range ansiCodes {
		style := lipgloss.NewStyle()
		if code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		// Big tiles stand out
		if c >= int(core.ColorGold) {
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return styles
}

// styleFor returns the lipgloss style for a color, falling back to default.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= core.ColorCount {
		return colorStyles[core.ColorDefault]
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
