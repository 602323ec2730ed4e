package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventModeChanged       EventType = "ModeChanged"
	EventDateSelected      EventType = "DateSelected"
	EventBinSelected       EventType = "BinSelected"
	EventReminderSubmitted EventType = "ReminderSubmitted"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ModeChangedEvent is emitted when the controller switches between browsing and editing
type ModeChangedEvent struct {
	From Mode
	To   Mode
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// DateSelectedEvent echoes a date selection
type DateSelectedEvent struct {
	Date Date
}

func (e DateSelectedEvent) Type() EventType { return EventDateSelected }

// BinSelectedEvent echoes a bin selection
type BinSelectedEvent struct {
	Index int
}

func (e BinSelectedEvent) Type() EventType { return EventBinSelected }

// ReminderSubmittedEvent carries the transient reminder built on submit.
// Delivering it is the reminder's whole lifecycle.
type ReminderSubmittedEvent struct {
	Reminder Reminder
}

func (e ReminderSubmittedEvent) Type() EventType { return EventReminderSubmitted }

// ConfigLoadedEvent is emitted when configuration is read
type ConfigLoadedEvent struct {
	Path string
	Bins int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs outside the core
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
