// Package wizard sequences the booking steps: it owns the current view,
// step, draft, validation errors and the confirmation overlay.
package wizard

import "github.com/cleanco/cleanco/internal/booking"

// View is the top-level page being shown.
type View string

const (
	ViewLanding View = "landing"
	ViewBooking View = "booking"
)

// State is an immutable snapshot of the wizard. Transitions return a new
// State; Errors is never shared between snapshots.
type State struct {
	View             View
	Step             booking.Step
	ShowConfirmation bool
	Draft            booking.Draft
	Errors           booking.Errors
}

// Initial is the state of a fresh session.
func Initial() State {
	return State{
		View:  ViewLanding,
		Step:  booking.FirstStep,
		Draft: booking.NewDraft(),
	}
}

// InBooking reports whether the form is showing.
func (s State) InBooking() bool { return s.View == ViewBooking }

// CanRetreat reports whether Back is enabled.
func (s State) CanRetreat() bool {
	return s.InBooking() && !s.ShowConfirmation && s.Step > booking.FirstStep
}

// Equal compares two snapshots field by field.
func (s State) Equal(o State) bool {
	if s.View != o.View || s.Step != o.Step || s.ShowConfirmation != o.ShowConfirmation || s.Draft != o.Draft {
		return false
	}
	if len(s.Errors) != len(o.Errors) {
		return false
	}
	for f, e := range s.Errors {
		if oe, ok := o.Errors[f]; !ok || oe != e {
			return false
		}
	}
	return true
}

func (s State) clone() State {
	s.Errors = s.Errors.Clone()
	return s
}
