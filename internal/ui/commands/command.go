package commands

import (
	"binminder/internal/domain"
)

// Command is an inbound request to the interaction controller.
// Payloads are trusted: the input layer rejects bad dates and bin indices
// before a command is constructed.
type Command interface {
	Type() string
	isCommand()
}

// StartEdit switches to the editing surface
type StartEdit struct{}

func (c StartEdit) Type() string { return "start_edit" }
func (c StartEdit) isCommand()   {}

// StopEdit returns to browsing
type StopEdit struct{}

func (c StopEdit) Type() string { return "stop_edit" }
func (c StopEdit) isCommand()   {}

// SubmitReminder builds a reminder for the selected date. Any text is accepted, including empty.
type SubmitReminder struct {
	Description string
}

func (c SubmitReminder) Type() string { return "submit_reminder" }
func (c SubmitReminder) isCommand()   {}

// SelectDate moves the calendar selection
type SelectDate struct {
	Date domain.Date
}

func (c SelectDate) Type() string { return "select_date" }
func (c SelectDate) isCommand()   {}

// SelectBin picks a bin category by catalog index
type SelectBin struct {
	Index int
}

func (c SelectBin) Type() string { return "select_bin" }
func (c SelectBin) isCommand()   {}
