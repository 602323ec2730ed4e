package views

import (
	"fmt"
	"strings"

	"binminder/internal/ui/viewmodels"
)

// CalendarRenderer draws a month grid
type CalendarRenderer struct {
	styles          *Styles
	showWeekNumbers bool
}

// NewCalendarRenderer creates a new calendar renderer
func NewCalendarRenderer(styles *Styles, showWeekNumbers bool) *CalendarRenderer {
	return &CalendarRenderer{
		styles:          styles,
		showWeekNumbers: showWeekNumbers,
	}
}

// Render returns the month as text, one line per week
func (cr *CalendarRenderer) Render(cal viewmodels.CalendarMonth) string {
	var b strings.Builder

	b.WriteString(cr.styles.CalendarHeader.Render(fmt.Sprintf("%s %d", cal.Month, cal.Year)))
	b.WriteString("\n")

	if cr.showWeekNumbers {
		b.WriteString("    ")
	}
	for i, name := range cal.Weekdays {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(cr.styles.Weekday.Render(fmt.Sprintf("%2s", name)))
	}
	b.WriteString("\n")

	for _, week := range cal.Weeks {
		if cr.showWeekNumbers {
			b.WriteString(cr.styles.WeekNumber.Render(fmt.Sprintf("%2d", week.Number)))
			b.WriteString("  ")
		}
		for i, day := range week.Days {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(cr.renderDay(day))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (cr *CalendarRenderer) renderDay(day viewmodels.CalendarDay) string {
	if day.Day == 0 {
		return "  "
	}
	text := fmt.Sprintf("%2d", day.Day)
	switch {
	case day.Selected:
		return cr.styles.DaySelected.Render(text)
	case day.Today:
		return cr.styles.DayToday.Render(text)
	default:
		return cr.styles.Day.Render(text)
	}
}
