package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("62")
	colorSecondary = lipgloss.Color("241")
	colorHighlight = lipgloss.Color("212")
)

var selectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

var normalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

var kindBadge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1).
	MarginRight(1)

var dateText = lipgloss.NewStyle().
	Foreground(colorSecondary)

var activeTab = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Underline(true).
	Padding(0, 1)

var inactiveTab = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

var statusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

var helpText = lipgloss.NewStyle().
	Foreground(colorSecondary)
