package tooltip

import (
	"fmt"
	"strings"
)

// Mode selects which interactions open and close a tooltip.
// It is fixed for the lifetime of a Session.
type Mode uint8

const (
	// Hover opens on pointer enter and closes on pointer leave.
	Hover Mode = iota
	// Click toggles on clicks on the trigger.
	Click
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case Hover:
		return "hover"
	case Click:
		return "click"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts "hover" or "click" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hover":
		return Hover, nil
	case "click":
		return Click, nil
	}
	return Hover, fmt.Errorf("unknown mode %q (want hover or click)", s)
}

// State is the visibility state of a Session.
type State uint8

const (
	StateClosed State = iota
	// StateOpening has an open timer pending.
	StateOpening
	StateOpen
	// StateClosing has a close timer pending.
	StateClosing
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpening:
		return "Opening"
	case StateOpen:
		return "Open"
	case StateClosing:
		return "Closing"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
