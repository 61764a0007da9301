package main

import "github.com/charmbracelet/lipgloss"

// styleSet centralizes the CLI's lipgloss styles. A disabled set renders
// everything unstyled, for -no-color and dumb terminals.
type styleSet struct {
	banner   lipgloss.Style
	input    lipgloss.Style
	sum      lipgloss.Style
	errLabel lipgloss.Style
	dim      lipgloss.Style
	status   lipgloss.Style
}

func newStyles(enabled bool) styleSet {
	if !enabled {
		plain := lipgloss.NewStyle()
		return styleSet{
			banner:   plain,
			input:    plain,
			sum:      plain,
			errLabel: plain,
			dim:      plain,
			status:   plain,
		}
	}

	return styleSet{
		banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")), // cyan
		input:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),            // blue
		sum:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")), // green
		errLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")), // red
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),           // gray
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
	}
}
