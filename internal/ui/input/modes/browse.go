package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"binminder/internal/ui/commands"
	"binminder/internal/ui/input/types"
)

// BrowseMode is the read-only posture. Date and bin selection still work
// here so that nothing typed is lost to a mode mismatch.
type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()

	if i, ok := binShortcut(key); ok {
		return []types.Action{commands.SelectBin{Index: i}}, true
	}

	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "e", "enter":
		return []types.Action{commands.StartEdit{}}, true

	case "left", "h":
		return moveDate(ctx, -1, 0), true

	case "right", "l":
		return moveDate(ctx, 1, 0), true

	case "up", "k":
		return moveDate(ctx, -7, 0), true

	case "down", "j":
		return moveDate(ctx, 7, 0), true

	case "pgup":
		return moveDate(ctx, 0, -1), true

	case "pgdown":
		return moveDate(ctx, 0, 1), true

	case "t":
		return []types.Action{commands.SelectDate{Date: ctx.Today()}}, true

	case "tab":
		return cycleBin(ctx, 1), true

	case "shift+tab":
		return cycleBin(ctx, -1), true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
