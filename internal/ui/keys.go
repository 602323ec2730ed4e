package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"binminder/internal/domain"
	"binminder/internal/ui/views"
)

// keyMap describes the bindings for the hint line and the help screen.
// Dispatch itself lives in the input package; these only document it.
type keyMap struct {
	Edit      key.Binding
	Day       key.Binding
	Week      key.Binding
	Month     key.Binding
	Today     key.Binding
	PickBin   key.Binding
	CycleBin  key.Binding
	Help      key.Binding
	Quit      key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	EditDay   key.Binding
	EditWeek  key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "edit"),
		),
		Day: key.NewBinding(
			key.WithKeys("left", "h", "right", "l"),
			key.WithHelp("←/→ h/l", "previous/next day"),
		),
		Week: key.NewBinding(
			key.WithKeys("up", "k", "down", "j"),
			key.WithHelp("↑/↓ k/j", "previous/next week"),
		),
		Month: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "previous/next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		PickBin: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "pick bin"),
		),
		CycleBin: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab/shift+tab", "next/previous bin"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add reminder"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		EditDay: key.NewBinding(
			key.WithKeys("ctrl+left", "ctrl+right"),
			key.WithHelp("ctrl+←/→", "previous/next day"),
		),
		EditWeek: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "previous/next week"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// shortHelp returns the hint line bindings for mode
func (k keyMap) shortHelp(mode domain.Mode) []key.Binding {
	if mode == domain.ModeEditing {
		return []key.Binding{k.Submit, k.Cancel, k.CycleBin, k.EditDay}
	}
	return []key.Binding{k.Edit, k.Day, k.PickBin, k.Help, k.Quit}
}

// helpSections lists every binding for the full help screen
func (k keyMap) helpSections() []views.HelpSection {
	return []views.HelpSection{
		{Title: "Browsing", Entries: entries(k.Edit, k.Day, k.Week, k.Month, k.Today, k.PickBin, k.CycleBin, k.Help, k.Quit)},
		{Title: "Editing", Entries: entries(k.Submit, k.Cancel, k.EditDay, k.EditWeek, k.Month, k.CycleBin, k.ForceQuit)},
	}
}

func entries(bindings ...key.Binding) []views.HelpEntry {
	out := make([]views.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, views.HelpEntry{Keys: h.Key, Desc: h.Desc})
	}
	return out
}
