package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	welcomeStyle = lipgloss.NewStyle().MarginBottom(1)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
