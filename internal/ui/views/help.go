package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpEntry is one key and its description
type HelpEntry struct {
	Keys string
	Desc string
}

// HelpSection groups entries under a heading
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// RenderHelpContent renders the full help, used both by the overlay and the pager
func RenderHelpContent(title string, sections []HelpSection) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, s := range sections {
		for _, e := range s.Entries {
			if w := lipgloss.Width(e.Keys); w > width {
				width = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render(title))
	help.WriteString("\n")

	for i, s := range sections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(s.Title))
		help.WriteString("\n")
		for _, e := range s.Entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.Keys))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(e.Keys), pad, descStyle.Render(e.Desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
