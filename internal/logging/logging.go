// Package logging sends the standard logger to a file and narrates the
// controller's diagnostic events into it.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"binminder/internal/domain"
	"binminder/internal/eventbus"
)

// Setup redirects the standard logger to path. An empty path discards output.
func Setup(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Describe returns the log line for a diagnostic event
func Describe(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.ModeChangedEvent:
		if ev.To == domain.ModeEditing {
			return "Now entering edit mode"
		}
		return "Now leaving edit mode"
	case eventbus.DateSelectedEvent:
		return fmt.Sprintf("Selected date is: %s", ev.Date)
	case eventbus.BinSelectedEvent:
		return fmt.Sprintf("Dropdown selected idx: %d", ev.Index)
	case eventbus.ReminderSubmittedEvent:
		return fmt.Sprintf("Attempting to add reminder %q for %s", ev.Reminder.Description, ev.Reminder.Date)
	case eventbus.ConfigLoadedEvent:
		return fmt.Sprintf("Loaded config from %s (%d custom bins)", ev.Path, ev.Bins)
	case eventbus.ConfigSavedEvent:
		return fmt.Sprintf("Saved config to %s", ev.Path)
	case eventbus.ErrorEvent:
		if ev.Err != nil {
			return fmt.Sprintf("Error: %s: %v", ev.Message, ev.Err)
		}
		return fmt.Sprintf("Error: %s", ev.Message)
	default:
		return fmt.Sprintf("Event: %s", e.Type())
	}
}

// Subscribe logs every diagnostic event published on bus to logger.
// The returned function removes the subscriptions.
func Subscribe(bus eventbus.EventBus, logger *log.Logger) func() {
	if logger == nil {
		logger = log.Default()
	}

	types := []eventbus.EventType{
		eventbus.EventModeChanged,
		eventbus.EventDateSelected,
		eventbus.EventBinSelected,
		eventbus.EventReminderSubmitted,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	}

	unsubs := make([]func(), 0, len(types))
	for _, t := range types {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logger.Println(Describe(e))
		}))
	}

	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
