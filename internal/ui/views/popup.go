package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centred on top of a greyed-out copy of
// the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 {
		width = lipgloss.Width(mainContent)
	}
	if height <= 0 {
		height = lipgloss.Height(mainContent)
	}

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < height || len(base) < y+modalH {
		base = append(base, "")
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	popupLines := strings.Split(styledPopup, "\n")

	out := make([]string, len(base))
	for i, line := range base {
		row := i - y
		if row < 0 || row >= len(popupLines) {
			out[i] = grey.Render(line)
			continue
		}
		left, right := splitPlain(line, x, modalW)
		out[i] = grey.Render(left) + popupLines[row] + grey.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// splitPlain cuts an unstyled line around a gap of width w starting at column x
func splitPlain(line string, x, w int) (string, string) {
	runes := []rune(line)
	for len(runes) < x {
		runes = append(runes, ' ')
	}
	left := string(runes[:x])
	if x+w >= len(runes) {
		return left, ""
	}
	return left, string(runes[x+w:])
}
