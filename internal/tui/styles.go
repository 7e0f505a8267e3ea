package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hiddenStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	placeholderSty  = lipgloss.NewStyle().Faint(true).Italic(true)
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	activePaneStyle = paneStyle.BorderForeground(lipgloss.Color("12"))

	saveStatusStyles = map[string]lipgloss.Style{
		"idle":    lipgloss.NewStyle().Faint(true),
		"pending": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"saving":  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		"saved":   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)
