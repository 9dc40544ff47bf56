package console

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI palette
var (
	lightBlue   = lipgloss.Color("12")
	lightGreen  = lipgloss.Color("10")
	lightCyan   = lipgloss.Color("14")
	lightRed    = lipgloss.Color("9")
	lightYellow = lipgloss.Color("11")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lightBlue).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lightYellow)

	successStyle = lipgloss.NewStyle().
			Foreground(lightGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(lightRed)

	hintStyle = lipgloss.NewStyle().
			Foreground(lightCyan)
)
