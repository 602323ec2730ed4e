package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"binminder/internal/domain"
)

// Mode re-exports the controller's mode so input code reads naturally
type Mode = domain.Mode

const (
	ModeBrowsing = domain.ModeBrowsing
	ModeEditing  = domain.ModeEditing
)

// Action is anything a mode handler asks the model to do. Controller
// commands (commands.Command) satisfy it, as do the host-only actions.
type Action interface {
	Type() string
}

// Context provides read-only access to the state needed for input handling
type Context interface {
	Mode() Mode
	CurrentDate() domain.Date
	CurrentBinIndex() (int, bool)
	Today() domain.Date
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
