package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brickball/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "SCORE")
	s.SetColored(2, 1, '█', core.ColorRed)
	s.SetColored(3, 1, '█', core.ColorRed)
	s.SetColored(4, 1, '=', core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[0], "SCORE") {
		t.Errorf("first line %q should contain SCORE", lines[0])
	}
	if !strings.Contains(lines[1], "██") {
		t.Errorf("adjacent cells of one color should render as one run, got %q", lines[1])
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if out := RenderScreen(s); !strings.Contains(out, "x") {
		t.Errorf("unknown colors should fall back to the default style, got %q", out)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorOrange, core.ColorYellow,
		core.ColorGreen, core.ColorBlue, core.ColorWhite, core.ColorGray, core.ColorCyan,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
