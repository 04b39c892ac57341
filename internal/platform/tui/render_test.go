package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bondi-dash/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.FillRect(0, 0, 20, 1, core.Cell{Rune: ' ', Bg: core.ColorOcean})
	s.DrawText(2, 0, "surf", core.ColorBrightWhite)
	s.DrawText(0, 2, "street", core.ColorStreet)

	out := RenderScreen(s)

	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(out, "surf") || !strings.Contains(out, "street") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestColorCodesCoverPalette(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorPeru; c++ {
		if _, ok := colorCodes[c]; !ok {
			t.Errorf("color %v has no terminal code", c)
		}
	}
}
