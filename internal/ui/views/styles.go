package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	ModeBrowse     lipgloss.Style
	ModeEdit       lipgloss.Style
	Heading        lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Button         lipgloss.Style
	Icon           lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	CalendarHeader lipgloss.Style
	Weekday        lipgloss.Style
	WeekNumber     lipgloss.Style
	Day            lipgloss.Style
	DayToday       lipgloss.Style
	DaySelected    lipgloss.Style
	Prompt         lipgloss.Style
	Help           lipgloss.Style
	HelpBox        lipgloss.Style
	Main           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		ModeBrowse: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("78")).
			Padding(0, 1),
		ModeEdit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1),
		Heading: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 2),
		Icon: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2).
			Width(18).
			Align(lipgloss.Center),
		Option:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		CalendarHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Weekday:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		WeekNumber:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Day:            lipgloss.NewStyle(),
		DayToday:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Underline(true),
		DaySelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")).Bold(true),
		Prompt:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Help:           lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		Main: lipgloss.NewStyle().Padding(1, 4),
	}
}

// BinColor returns the accent color for a bin icon key
func BinColor(iconKey string) string {
	switch iconKey {
	case "grijs.png":
		return "245" // grey
	case "groen.png":
		return "78" // green
	case "sorti.png":
		return "214" // yellow
	default:
		return "252"
	}
}
