package render

import "github.com/charmbracelet/lipgloss"

var (
	// Private brand colors.
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")

	borderStyle = lipgloss.NewStyle().
			Foreground(colorSlate)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Header Styles.
	headerStyle = cellStyle.
			Bold(true).
			Background(colorIris).
			Foreground(colorWhite)

	// Row Styles.
	firstLevelStyle = cellStyle.
			Foreground(colorIris).
			Bold(true)

	transitiveStyle = cellStyle.
			Foreground(colorSlate)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSlate)
)
