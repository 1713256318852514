package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorText    = lipgloss.Color("#F8FAFC")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Align(lipgloss.Right)

	cellStyle = lipgloss.NewStyle().
			Align(lipgloss.Right)

	ruleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
