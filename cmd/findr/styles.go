package main

import "github.com/charmbracelet/lipgloss"

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			MarginBottom(1).
			Padding(0, 1)

	styleInput = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240")).
			Width(40).
			Padding(0, 1)

	// Red underline, like the hint below it.
	styleInputInvalid = styleInput.
				BorderForeground(lipgloss.Color("203"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			PaddingLeft(2)

	styleButton = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 3).
			MarginTop(1)

	styleButtonFocused = styleButton.
				Background(lipgloss.Color("99")).
				Underline(true)

	styleButtonDisabled = styleButton.
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("236"))

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 1, 0, 1)
)
