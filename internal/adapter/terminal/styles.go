package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray - timestamps, metadata

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")) // White bold - headers

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	goodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")) // Green

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")) // Yellow

	badStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")) // Red

	leftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")) // Blue - first speaker

	rightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13")) // Magenta - everyone else

	painStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Italic(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")) // Cyan

	divider = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(strings.Repeat("━", 60))
)

func bandStyle(band string) lipgloss.Style {
	switch band {
	case "bad":
		return badStyle
	case "warning":
		return warnStyle
	default:
		return goodStyle
	}
}
