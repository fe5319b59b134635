package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	buttonW     = 7  // width of each keypad button in characters
	buttonGap   = 1  // spaces between buttons
	keypadCols  = 4  // buttons per row
	displayMinW = 31 // keypadCols*buttonW + (keypadCols-1)*buttonGap
)

// Lipgloss styles used across the TUI.
var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	keypadStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	historyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bb9af7")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))

	outputStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7dcfff"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f7768e"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))

	functionButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#73daca"))

	equalButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#9ece6a"))

	cursorButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#ff9e64"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
