package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"binminder/internal/ui/viewmodels"
)

// Frame carries the host-owned pieces of a frame that are not part of the
// projected description
type Frame struct {
	Width       int
	Height      int
	Prompt      string // description prompt while editing
	Input       string // rendered text input
	HelpLine    string // short key hints
	Notice      string // transient acknowledgement under the status line
	ShowHelp    bool
	HelpContent string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	calendar    *CalendarRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showWeekNumbers bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		calendar:    NewCalendarRenderer(styles, showWeekNumbers),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(desc viewmodels.ViewDescription, frame Frame) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(desc))
	content.WriteString("\n")

	switch {
	case desc.Edit != nil:
		content.WriteString(r.renderEdit(desc.Edit, frame))
	case desc.Browse != nil:
		content.WriteString(r.renderBrowse(desc.Browse))
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Status.Render(desc.Status))
	if frame.Notice != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render(frame.Notice))
	}

	if frame.HelpLine != "" && !frame.ShowHelp {
		// Push the hints to the bottom when the height is known
		used := strings.Count(content.String(), "\n") + 1
		if pad := frame.Height - 2 - used - 1; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(frame.HelpLine))
	}

	mainStyle := r.styles.Main
	if frame.Height > 0 {
		mainStyle = mainStyle.MaxHeight(frame.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if frame.ShowHelp && frame.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, frame.HelpContent, frame.Height, frame.Width, r.styles.HelpBox)
	}

	return finalContent
}

func (r *Renderer) renderTitle(desc viewmodels.ViewDescription) string {
	title := r.styles.Title.Render(desc.Title)

	badge := r.styles.ModeBrowse
	if desc.Edit != nil {
		badge = r.styles.ModeEdit
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", badge.Render(desc.ModeLabel))
}

func (r *Renderer) renderBrowse(b *viewmodels.BrowseView) string {
	var sb strings.Builder

	sb.WriteString(r.styles.Heading.Render(b.Heading))
	sb.WriteString("\n")

	bin := lipgloss.NewStyle().Foreground(lipgloss.Color(BinColor(b.Bin.IconKey))).Render(b.Bin.DisplayLabel)
	sb.WriteString(fmt.Sprintf("  %s  %s\n", b.Date.String(), bin))
	sb.WriteString(r.styles.Dim.Render(fmt.Sprintf("  %s", b.Date.Weekday())))
	sb.WriteString("\n\n")

	sb.WriteString(r.styles.Button.Render(b.EditLabel))
	return sb.String()
}

func (r *Renderer) renderEdit(e *viewmodels.EditView, frame Frame) string {
	icon := r.styles.Icon.
		BorderForeground(lipgloss.Color(BinColor(e.IconKey))).
		Render(e.IconKey)

	left := lipgloss.JoinVertical(lipgloss.Left, icon, "", r.renderDropdown(e.Options))
	right := r.calendar.Render(e.Calendar)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(r.styles.Prompt.Render(frame.Prompt))
	sb.WriteString(frame.Input)
	sb.WriteString("\n")
	sb.WriteString(r.styles.Button.Render(e.SubmitLabel))
	return sb.String()
}

func (r *Renderer) renderDropdown(options []viewmodels.DropdownOption) string {
	lines := make([]string, 0, len(options))
	for i, opt := range options {
		text := fmt.Sprintf("%d %s", i+1, opt.Label)
		if opt.Selected {
			lines = append(lines, r.styles.OptionSelected.Render("> "+text))
			continue
		}
		lines = append(lines, r.styles.Option.Render("  "+text))
	}
	return strings.Join(lines, "\n")
}
