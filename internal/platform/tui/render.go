package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wellhopper/wellhopper/internal/core"
)

// styleFor maps a core color to its lipgloss style.
func styleFor(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorRed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case core.ColorGreen:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case core.ColorYellow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case core.ColorBlue:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	case core.ColorMagenta:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	case core.ColorCyan:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	case core.ColorWhite:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	case core.ColorBrightRed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case core.ColorBrightGreen:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case core.ColorBrightYellow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case core.ColorBrightBlue:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	case core.ColorBrightMagenta:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	case core.ColorBrightCyan:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	case core.ColorBrightWhite:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	case core.ColorOrange:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	case core.ColorGray:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	default:
		return lipgloss.NewStyle()
	}
}

// RenderScreen converts a Screen buffer to a styled string. Adjacent
// cells with the same color are grouped to minimize escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() && s.GetCell(x, y).Color == startColor {
				run.WriteRune(s.GetCell(x, y).Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
