package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bondi-dash/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBlack:       "0",
	core.ColorBrightWhite: "15",
	core.ColorOrange:      "208",
	core.ColorGray:        "245",
	core.ColorSky:         "117",
	core.ColorStreet:      "244",
	core.ColorSidewalk:    "252",
	core.ColorSand:        "223",
	core.ColorOcean:       "33",
	core.ColorTrunk:       "94",
	core.ColorLeaf:        "77",
	core.ColorGold:        "220",
	core.ColorTomato:      "203",
	core.ColorPeru:        "173",
}

type colorPair struct {
	fg, bg core.Color
}

// cellStyle returns the lipgloss style for a foreground/background pair.
func cellStyle(p colorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code, ok := colorCodes[p.fg]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code, ok := colorCodes[p.bg]; ok {
		style = style.Background(lipgloss.Color(code))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[colorPair]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Color, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[pair]
			if !ok {
				style = cellStyle(pair)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
