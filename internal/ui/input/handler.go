package input

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"binminder/internal/ui/commands"
	"binminder/internal/ui/input/modes"
	"binminder/internal/ui/input/types"
)

// Handler routes key presses to the handler of the current mode and turns
// them into actions. It mirrors the controller's mode; the controller stays
// authoritative and Sync realigns the two after each dispatch.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // description input for edit mode
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "take out trash"
	ti.CharLimit = 200

	h := &Handler{
		currentMode: types.ModeBrowsing,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeBrowsing] = modes.NewBrowseMode()
	h.modes[types.ModeEditing] = modes.NewEditMode(h.textInput)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// Unconsumed keys outside text modes are ignored
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if c, ok := action.(commands.Command); ok {
			if err := Validate(c); err != nil {
				log.Printf("input: dropping %s: %v", c.Type(), err)
				continue
			}
		}
		allActions = append(allActions, action)

		switch action.(type) {
		case commands.StartEdit:
			allActions = append(allActions, h.switchTo(types.ModeEditing, ctx)...)
			cmd = textinput.Blink
		case commands.StopEdit:
			allActions = append(allActions, h.switchTo(types.ModeBrowsing, ctx)...)
		}
	}

	// Anything the edit mode didn't claim is typing
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchTo(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var out []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		out = append(out, old.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// Sync aligns the handler with the controller's mode
func (h *Handler) Sync(mode types.Mode, ctx types.Context) {
	if mode != h.currentMode {
		log.Printf("input: resyncing mode %s -> %s", h.currentMode, mode)
		h.switchTo(mode, ctx)
	}
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the display name of the current mode handler
func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return ""
}

// Prompt returns the description prompt while editing
func (h *Handler) Prompt() string {
	if m, ok := h.modes[h.currentMode].(*modes.EditMode); ok {
		return m.Prompt()
	}
	return ""
}

func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeEditing
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
