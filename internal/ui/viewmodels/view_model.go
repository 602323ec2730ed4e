package viewmodels

import (
	"fmt"
	"time"

	"binminder/internal/config"
	"binminder/internal/domain"
	"binminder/internal/ui/state"
)

// Projector maps a snapshot to a renderable description. Implementations
// must be pure so the drawing technology can be swapped freely.
type Projector interface {
	Project(snap state.Snapshot) ViewDescription
}

// ViewDescription is everything a renderer needs for one frame
type ViewDescription struct {
	Title     string
	Mode      domain.Mode
	ModeLabel string
	Browse    *BrowseView // set while browsing
	Edit      *EditView   // set while editing
	Status    string
}

// BrowseView is the read-only surface
type BrowseView struct {
	Heading   string
	Date      domain.Date
	Bin       domain.BinCategory
	EditLabel string
}

// EditView is the selection surface: bin picture, dropdown, calendar, submit
type EditView struct {
	IconKey     string
	Options     []DropdownOption
	Calendar    CalendarMonth
	SubmitLabel string
}

// DropdownOption is one entry of the bin dropdown
type DropdownOption struct {
	Label    string
	Selected bool
}

// CalendarMonth is a month grid; every week has exactly 7 cells
type CalendarMonth struct {
	Year     int
	Month    time.Month
	Weekdays []string
	Weeks    []CalendarWeek
}

// CalendarWeek is one row of the grid
type CalendarWeek struct {
	Number int // ISO week number of the row's first in-month day
	Days   [7]CalendarDay
}

// CalendarDay is a grid cell; Day is 0 for padding cells outside the month
type CalendarDay struct {
	Day      int
	Selected bool
	Today    bool
}

// ViewModel is the default Projector
type ViewModel struct {
	title            string
	catalog          domain.BinCatalog
	weekStartsMonday bool
	today            func() domain.Date
}

var _ Projector = (*ViewModel)(nil)

// NewViewModel creates a new view model
func NewViewModel(cfg *config.Config, catalog domain.BinCatalog) *ViewModel {
	return &ViewModel{
		title:            cfg.Title,
		catalog:          catalog,
		weekStartsMonday: cfg.UISettings.WeekStartsMonday,
		today:            domain.Today,
	}
}

// SetClock replaces the source of "today" used for the calendar highlight
func (vm *ViewModel) SetClock(today func() domain.Date) {
	vm.today = today
}

// Project builds the description for snap
func (vm *ViewModel) Project(snap state.Snapshot) ViewDescription {
	desc := ViewDescription{
		Title:  vm.title,
		Mode:   snap.Mode,
		Status: fmt.Sprintf("%s · %s", snap.Date, snap.BinCategory.DisplayLabel),
	}

	switch snap.Mode {
	case domain.ModeEditing:
		desc.ModeLabel = "EDIT"
		desc.Edit = &EditView{
			IconKey:     snap.BinCategory.IconKey,
			Options:     vm.dropdown(snap),
			Calendar:    vm.calendar(snap.Date),
			SubmitLabel: "Add reminder",
		}
	default:
		desc.ModeLabel = "BROWSE"
		desc.Browse = &BrowseView{
			Heading:   "Reminders:",
			Date:      snap.Date,
			Bin:       snap.BinCategory,
			EditLabel: "Edit",
		}
	}

	return desc
}

func (vm *ViewModel) dropdown(snap state.Snapshot) []DropdownOption {
	selected, ok := snap.SelectedBin()
	options := make([]DropdownOption, 0, vm.catalog.Len())
	for i, label := range vm.catalog.Labels() {
		options = append(options, DropdownOption{
			Label:    label,
			Selected: ok && selected == i,
		})
	}
	return options
}

func (vm *ViewModel) calendar(selected domain.Date) CalendarMonth {
	today := vm.today()
	first := selected.FirstOfMonth()

	cal := CalendarMonth{
		Year:     selected.Year,
		Month:    selected.Month,
		Weekdays: vm.weekdayHeader(),
	}

	// Column of the 1st, counted from the configured week start
	offset := int(first.Weekday())
	if vm.weekStartsMonday {
		offset = (offset + 6) % 7
	}

	thursdayCol := 4
	if vm.weekStartsMonday {
		thursdayCol = 3
	}

	var week CalendarWeek
	col := offset
	for day := 1; day <= selected.DaysInMonth(); day++ {
		d := domain.Date{Year: selected.Year, Month: selected.Month, Day: day}
		if week.Number == 0 {
			// ISO 8601 numbers a week by its Thursday
			_, week.Number = d.AddDays(thursdayCol - col).Time().ISOWeek()
		}
		week.Days[col] = CalendarDay{
			Day:      day,
			Selected: d == selected,
			Today:    d == today,
		}
		col++
		if col == 7 {
			cal.Weeks = append(cal.Weeks, week)
			week = CalendarWeek{}
			col = 0
		}
	}
	if col != 0 {
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal
}

func (vm *ViewModel) weekdayHeader() []string {
	names := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	if vm.weekStartsMonday {
		return append(names[1:], names[0])
	}
	return names
}
