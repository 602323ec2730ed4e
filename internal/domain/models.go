package domain

import "fmt"

// Mode is the two-state UI posture
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeEditing:
		return "editing"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "browsing":
		*m = ModeBrowsing
	case "editing":
		*m = ModeEditing
	default:
		return fmt.Errorf("unknown mode %q", string(text))
	}
	return nil
}

// Reminder is a user-authored note for a date. It is never stored:
// it exists from submit until the acknowledgement has been logged.
type Reminder struct {
	Description string `json:"description"`
	Date        Date   `json:"date"`
}

// NewReminder constructs a reminder; the description is not validated and may be empty
func NewReminder(description string, date Date) Reminder {
	return Reminder{Description: description, Date: date}
}
