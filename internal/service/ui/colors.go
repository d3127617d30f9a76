package ui

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes so the help output follows the user's terminal theme.
var (
	// TitleStyle cyan section headings
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle green usage lines and command names
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle gray descriptions
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle yellow flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
