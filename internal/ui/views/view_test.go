package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"binminder/internal/config"
	"binminder/internal/domain"
	"binminder/internal/ui/state"
	"binminder/internal/ui/viewmodels"
)

func plain(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func describe(mode domain.Mode, bin int) viewmodels.ViewDescription {
	vm := viewmodels.NewViewModel(config.DefaultConfig(), domain.DefaultBinCatalog())
	vm.SetClock(func() domain.Date { return domain.MustDate(2024, time.May, 3) })
	s := state.AppState{
		Mode:      mode,
		Selection: state.NewSelectionState(domain.MustDate(2024, time.May, 15)).WithBin(bin),
	}
	return vm.Project(s.Snapshot(domain.DefaultBinCatalog()))
}

func TestRenderBrowse(t *testing.T) {
	out := plain(NewRenderer(false).Render(describe(domain.ModeBrowsing, 0), Frame{Width: 80, Height: 24, HelpLine: "e edit"}))

	assert.Contains(t, out, "Actual garbage app")
	assert.Contains(t, out, "BROWSE")
	assert.Contains(t, out, "Reminders:")
	assert.Contains(t, out, "2024-05-15")
	assert.Contains(t, out, "Grijze bak")
	assert.Contains(t, out, "Edit")
	assert.Contains(t, out, "e edit")
	assert.NotContains(t, out, "Add reminder")
}

func TestRenderEdit(t *testing.T) {
	frame := Frame{Width: 100, Height: 30, Prompt: "Reminder: ", Input: "trash"}
	out := plain(NewRenderer(true).Render(describe(domain.ModeEditing, 1), frame))

	assert.Contains(t, out, "EDIT")
	assert.Contains(t, out, "groen.png")
	assert.Contains(t, out, "> 2 Groene bak")
	assert.Contains(t, out, "1 Grijze bak")
	assert.Contains(t, out, "May 2024")
	assert.Contains(t, out, "Mo Tu We Th Fr Sa Su")
	assert.Contains(t, out, "31")
	assert.Contains(t, out, "Reminder: trash")
	assert.Contains(t, out, "Add reminder")
	assert.NotContains(t, out, "Reminders:")
}

func TestRenderHelpOverlay(t *testing.T) {
	help := RenderHelpContent("binminder help", []HelpSection{
		{Title: "Browse", Entries: []HelpEntry{{Keys: "e", Desc: "edit"}, {Keys: "q", Desc: "quit"}}},
	})
	frame := Frame{Width: 80, Height: 24, ShowHelp: true, HelpContent: help, HelpLine: "? help"}
	out := plain(NewRenderer(false).Render(describe(domain.ModeBrowsing, 0), frame))

	assert.Contains(t, out, "binminder help")
	assert.Contains(t, out, "edit")
	assert.NotContains(t, out, "? help")
	assert.GreaterOrEqual(t, len(strings.Split(out, "\n")), 24)
}

func TestRenderHelpContentAlignsKeys(t *testing.T) {
	out := plain(RenderHelpContent("Help", []HelpSection{
		{Title: "Keys", Entries: []HelpEntry{{Keys: "e", Desc: "one"}, {Keys: "pgup", Desc: "two"}}},
	}))

	assert.Contains(t, out, "  e     one")
	assert.Contains(t, out, "  pgup  two")
}

func TestSplitPlain(t *testing.T) {
	l, r := splitPlain("abcdefgh", 2, 3)
	assert.Equal(t, "ab", l)
	assert.Equal(t, "fgh", r)

	l, r = splitPlain("ab", 4, 2)
	assert.Equal(t, "ab  ", l)
	assert.Equal(t, "", r)
}
