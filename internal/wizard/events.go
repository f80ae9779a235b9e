package wizard

import "github.com/cleanco/cleanco/internal/booking"

// Event is a transition request from the presentation layer.
type Event interface {
	eventName() string
}

// StartBooking opens the form from the landing view, keeping any draft.
type StartBooking struct{}

// Advance validates the current step and moves forward on success.
type Advance struct{}

// Retreat goes back one step.
type Retreat struct{}

// DismissConfirmation closes the invoice overlay and stays on the last step.
type DismissConfirmation struct{}

// ConfirmAndReset accepts the invoice and starts over.
type ConfirmAndReset struct{}

// GoHome returns to the landing view, keeping the draft.
type GoHome struct{}

// Reset abandons the booking from anywhere and clears the draft.
type Reset struct{}

// SetField assigns one draft value.
type SetField struct {
	Field booking.Field
	Value string
}

func (StartBooking) eventName() string        { return "start_booking" }
func (Advance) eventName() string             { return "advance" }
func (Retreat) eventName() string             { return "retreat" }
func (DismissConfirmation) eventName() string { return "dismiss_confirmation" }
func (ConfirmAndReset) eventName() string     { return "confirm_and_reset" }
func (GoHome) eventName() string              { return "go_home" }
func (Reset) eventName() string               { return "reset" }
func (SetField) eventName() string            { return "select_field" }

// Name returns the event's wire name, e.g. "advance".
func Name(e Event) string {
	if e == nil {
		return ""
	}
	return e.eventName()
}
