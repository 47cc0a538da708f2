package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. ColorDefault is absent:
// default runs are written unstyled.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// styleFor returns the style of a color and whether it needs escapes at all.
func styleFor(c core.Color) (lipgloss.Style, bool) {
	st, ok := colorStyles[c]
	return st, ok
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run, and trailing blank
// cells of each row are dropped.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		writeRow(&sb, s, y, rowEnd(s, y))
	}
	return sb.String()
}

// rowEnd returns one past the last cell of row y that is not a default blank.
func rowEnd(s *core.Screen, y int) int {
	end := s.Width()
	for end > 0 {
		c := s.GetCell(end-1, y)
		if c.Rune != ' ' || c.Color != core.ColorDefault {
			break
		}
		end--
	}
	return end
}

func writeRow(sb *strings.Builder, s *core.Screen, y, end int) {
	var run strings.Builder
	x := 0
	for x < end {
		color := s.GetCell(x, y).Color
		run.Reset()
		for x < end {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}

		if st, ok := styleFor(color); ok {
			sb.WriteString(st.Render(run.String()))
		} else {
			sb.WriteString(run.String())
		}
	}
}
