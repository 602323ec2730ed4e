package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"binminder/internal/ui/input/types"
)

// EditMode shows the bin picker, the calendar and the description input.
// Letters go to the description, so navigation uses keys the text input leaves alone.
type EditMode struct {
	textInputMode TextInputMode
}

func NewEditMode(ti *textinput.Model) *EditMode {
	return &EditMode{
		textInputMode: NewTextInputMode("edit", "Reminder: ", ti),
	}
}

func (m *EditMode) Name() string {
	return m.textInputMode.Name()
}

// Prompt is the label shown in front of the description input
func (m *EditMode) Prompt() string {
	return m.textInputMode.Prompt()
}

func (m *EditMode) Enter(ctx types.Context) []types.Action {
	return m.textInputMode.Enter(ctx)
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	return m.textInputMode.Exit(ctx)
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+left":
		return moveDate(ctx, -1, 0), true
	case "ctrl+right":
		return moveDate(ctx, 1, 0), true
	case "up":
		return moveDate(ctx, -7, 0), true
	case "down":
		return moveDate(ctx, 7, 0), true
	case "pgup":
		return moveDate(ctx, 0, -1), true
	case "pgdown":
		return moveDate(ctx, 0, 1), true
	case "tab":
		return cycleBin(ctx, 1), true
	case "shift+tab":
		return cycleBin(ctx, -1), true
	}

	// Enter, Esc and Ctrl+C are handled by the text input base
	return m.textInputMode.HandleKey(msg, ctx)
}
