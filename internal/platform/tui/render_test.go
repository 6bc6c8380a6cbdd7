package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColor(0, 1, "2048", core.ColorBrightCyan)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "plain") || !strings.Contains(out, "2048") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if styleFor(core.Color(250)).Render("x") != colorStyles[core.ColorDefault].Render("x") {
		t.Error("unknown colors should render with the default style")
	}
}

func TestPaletteStyles(t *testing.T) {
	for _, c := range []core.Color{core.ColorGold, core.ColorPink, core.ColorPurple} {
		if !styleFor(c).GetBold() {
			t.Errorf("color %d should be bold", c)
		}
	}
	if styleFor(core.ColorRed).GetBold() {
		t.Error("small tile colors should not be bold")
	}
}
