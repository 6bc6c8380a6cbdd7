package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui2048/internal/games/t2048"
)

// levelPicker is the campaign level list shown inside the menu.
type levelPicker struct {
	cursor int
}

// handle applies a menu action. It returns the chosen level (1-indexed) when
// the user selects one, and back when the user leaves the list.
func (p *levelPicker) handle(action MenuAction) (level int, back bool) {
	switch action {
	case MenuActionUp:
		if p.cursor > 0 {
			p.cursor--
		}
	case MenuActionDown:
		if p.cursor < t2048.LevelCount()-1 {
			p.cursor++
		}
	case MenuActionSelect:
		return p.cursor + 1, false
	case MenuActionBack:
		return 0, true
	}
	return 0, false
}

func (p levelPicker) view(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", width))
	b.WriteString("\n\n")

	levelTargets := t2048.LevelTargets()
	for i, name := range t2048.LevelNames() {
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %-18s Target: %d", cursor, i+1, name, levelTargets[i])
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", width))

	return b.String()
}
