// Package tui provides terminal UI components.
package tui

import "github.com/charmbracelet/lipgloss"

// Launcher styles
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	MenuStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	ArmedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6EE7B7")).
			Bold(true)

	KeyHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6EE7B7")).
			Bold(true)

	ResultTimestampStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true)
)
