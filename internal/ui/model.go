package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"binminder/internal/config"
	"binminder/internal/domain"
	"binminder/internal/eventbus"
	"binminder/internal/ui/commands"
	"binminder/internal/ui/controller"
	"binminder/internal/ui/input"
	inputtypes "binminder/internal/ui/input/types"
	"binminder/internal/ui/viewmodels"
	"binminder/internal/ui/views"
)

const noticeDuration = 3 * time.Second

// Model is the Bubble Tea host. It owns no interaction state of its own:
// keys become commands, the controller applies them, and every frame is
// drawn from a fresh snapshot.
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	controller *controller.Controller

	width       int
	height      int
	help        help.Model
	keys        keyMap
	showHelp    bool
	inPagerMode bool // tracks if we're currently in pager mode
	notice      string
	noticeSeq   int

	renderer     *views.Renderer
	viewModel    viewmodels.Projector
	inputHandler *input.Handler
	helpOps      *HelpOps
	clock        func() domain.Date

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around ctrl
func NewModel(bus eventbus.EventBus, cfg *config.Config, ctrl *controller.Controller) *Model {
	return &Model{
		bus:          bus,
		config:       cfg,
		controller:   ctrl,
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowWeekNumbers),
		viewModel:    viewmodels.NewViewModel(cfg, ctrl.Catalog()),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
		clock:        domain.Today,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// SetProjector replaces the view projector
func (m *Model) SetProjector(p viewmodels.Projector) {
	m.viewModel = p
}

// SetClock replaces the source of "today" used by the t key
func (m *Model) SetClock(today func() domain.Date) {
	m.clock = today
}

// Init aligns the input handler with the controller's starting mode
func (m *Model) Init() tea.Cmd {
	snap := m.controller.Snapshot()
	m.inputHandler.Sync(snap.Mode, m.context())
	if snap.Mode == domain.ModeEditing {
		return textinput.Blink
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		ctx := m.context()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case commands.Command:
		snap := m.controller.Dispatch(a)
		// The controller is authoritative for the mode
		m.inputHandler.Sync(snap.Mode, input.NewSnapshotContext(snap))
		return nil

	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		if m.config.UISettings.UsePagerForHelp && m.program != nil {
			return m.fetchHelpPager(helpContent(m.config.Title, m.keys))
		}
		m.showHelp = !m.showHelp
		return nil

	case inputtypes.UpdateTextAction:
		return nil

	default:
		log.Printf("Unhandled action: %s", action.Type())
		return nil
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if e, ok := msg.Event.(eventbus.ReminderSubmittedEvent); ok {
			m.notice = fmt.Sprintf("Reminder noted for %s", e.Reminder.Date)
			if e.Reminder.Description != "" {
				m.notice = fmt.Sprintf("Reminder %q noted for %s", e.Reminder.Description, e.Reminder.Date)
			}
			m.noticeSeq++
			seq := m.noticeSeq
			return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
		}
		return m, nil

	case clearNoticeMsg:
		// Only the timer of the latest notice clears it
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the overlay
			log.Printf("Help pager failed: %v", msg.err)
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		return m, nil
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(content string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(content)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	snap := m.controller.Snapshot()
	desc := m.viewModel.Project(snap)

	frame := views.Frame{
		Width:    m.width,
		Height:   m.height,
		HelpLine: m.help.ShortHelpView(m.keys.shortHelp(snap.Mode)),
		Notice:   m.notice,
		ShowHelp: m.showHelp,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		frame.Prompt = m.inputHandler.Prompt()
		frame.Input = ti.View()
	}
	if m.showHelp {
		frame.HelpContent = helpContent(m.config.Title, m.keys)
	}

	return m.renderer.Render(desc, frame)
}

func (m *Model) context() *input.SnapshotContext {
	return &input.SnapshotContext{Snap: m.controller.Snapshot(), Clock: m.clock}
}
