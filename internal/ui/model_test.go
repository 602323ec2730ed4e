package ui

import (
	"regexp"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binminder/internal/config"
	"binminder/internal/domain"
	"binminder/internal/eventbus"
	"binminder/internal/ui/controller"
	"binminder/internal/ui/state"
)

var (
	may15    = domain.MustDate(2024, time.May, 15)
	ansiCode = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

func newTestModel(t *testing.T, bus eventbus.EventBus) (*Model, *controller.Controller) {
	t.Helper()
	cfg := config.DefaultConfig()
	ctrl := controller.New(state.NewAppState(may15), domain.DefaultBinCatalog(), bus)
	m := NewModel(bus, cfg, ctrl)
	m.SetClock(func() domain.Date { return domain.MustDate(2024, time.June, 1) })
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, ctrl
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func view(m *Model) string {
	return ansiCode.ReplaceAllString(m.View(), "")
}

// collect runs cmd and flattens batches
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestModelLoadingBeforeSize(t *testing.T) {
	ctrl := controller.New(state.NewAppState(may15), domain.DefaultBinCatalog(), nil)
	m := NewModel(nil, config.DefaultConfig(), ctrl)
	assert.Equal(t, "Loading...", m.View())
}

func TestModelBrowseNavigation(t *testing.T) {
	m, ctrl := newTestModel(t, nil)

	press(m, typed("l"), tea.KeyMsg{Type: tea.KeyDown}, typed("3"))
	snap := ctrl.Snapshot()
	assert.Equal(t, domain.ModeBrowsing, snap.Mode)
	assert.Equal(t, may15.AddDays(8), snap.Date)
	assert.Equal(t, "sorti.png", snap.BinCategory.IconKey)

	press(m, typed("t"))
	assert.Equal(t, domain.MustDate(2024, time.June, 1), ctrl.Snapshot().Date)

	out := view(m)
	assert.Contains(t, out, "Reminders:")
	assert.Contains(t, out, "2024-06-01")
	assert.Contains(t, out, "Sorti bak")
}

func TestModelEditRoundTrip(t *testing.T) {
	bus := eventbus.New()
	var mu sync.Mutex
	var submitted []domain.Reminder
	bus.Subscribe(eventbus.EventReminderSubmitted, func(e eventbus.DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		submitted = append(submitted, e.(eventbus.ReminderSubmittedEvent).Reminder)
	})

	m, ctrl := newTestModel(t, bus)

	press(m, typed("e"))
	require.Equal(t, domain.ModeEditing, ctrl.Snapshot().Mode)
	out := view(m)
	assert.Contains(t, out, "Add reminder")
	assert.Contains(t, out, "May 2024")

	// Letters are description text while editing
	press(m, typed("t"), typed("r"), typed("a"), typed("s"), typed("h"))
	assert.Equal(t, may15, ctrl.Snapshot().Date)
	assert.Contains(t, view(m), "trash")

	press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyCtrlRight})
	snap := ctrl.Snapshot()
	assert.Equal(t, may15.AddDays(1), snap.Date)
	assert.Equal(t, "groen.png", snap.BinCategory.IconKey)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.ModeBrowsing, ctrl.Snapshot().Mode)
	assert.Contains(t, view(m), "Reminders:")

	bus.Close()
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, submitted, 1)
	assert.Equal(t, domain.NewReminder("trash", may15.AddDays(1)), submitted[0])
}

func TestModelEscapeLeavesWithoutSubmitting(t *testing.T) {
	m, ctrl := newTestModel(t, nil)

	press(m, typed("e"), typed("x"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, domain.ModeBrowsing, ctrl.Snapshot().Mode)

	// Input starts empty on the next visit
	press(m, typed("e"))
	assert.Equal(t, "", m.inputHandler.TextInput().Value())
}

func TestModelHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, nil)

	// No program attached, so help falls back to the overlay
	press(m, typed("?"))
	assert.True(t, m.showHelp)
	out := view(m)
	assert.Contains(t, out, "Actual garbage app help")
	assert.Contains(t, out, "Browsing")
	assert.Contains(t, out, "Editing")

	// Keys don't reach the controller while help is open
	press(m, typed("e"))
	assert.True(t, m.showHelp)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	msgs := collect(press(m, typed("q")))
	assert.Contains(t, msgs, tea.QuitMsg{})
}

func TestModelReminderNotice(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(EventMsg{Event: eventbus.ReminderSubmittedEvent{Reminder: domain.NewReminder("papier", may15)}})
	assert.NotNil(t, cmd)
	assert.Contains(t, view(m), `Reminder "papier" noted for 2024-05-15`)

	m.Update(clearNoticeMsg{seq: 1})
	assert.NotContains(t, view(m), "noted for")
}

func TestModelNoticeOutlivesEarlierTimer(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(EventMsg{Event: eventbus.ReminderSubmittedEvent{Reminder: domain.NewReminder("papier", may15)}})
	m.Update(EventMsg{Event: eventbus.ReminderSubmittedEvent{Reminder: domain.NewReminder("glas", may15)}})

	m.Update(clearNoticeMsg{seq: 1})
	assert.Contains(t, view(m), `Reminder "glas" noted for 2024-05-15`)

	m.Update(clearNoticeMsg{seq: 2})
	assert.NotContains(t, view(m), "noted for")
}

func TestModelPagerPausesInput(t *testing.T) {
	m, ctrl := newTestModel(t, nil)

	m.Update(pauseRenderingMsg{})
	press(m, typed("l"))
	assert.Equal(t, may15, ctrl.Snapshot().Date)

	m.Update(resumeRenderingMsg{})
	press(m, typed("l"))
	assert.Equal(t, may15.AddDays(1), ctrl.Snapshot().Date)
}
