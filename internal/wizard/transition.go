package wizard

import (
	"errors"
	"fmt"

	"github.com/cleanco/cleanco/internal/booking"
)

// ErrTransitionNotAllowed is returned for an event that is not enabled in the
// current state.
var ErrTransitionNotAllowed = errors.New("transition not allowed")

// Apply computes the state that follows s under e using rules for
// validation. On error the returned state equals s.
func Apply(s State, e Event, rules booking.Rules) (State, error) {
	if !allowed(s, e) {
		return s, fmt.Errorf("%s from %s: %w", Name(e), describe(s), ErrTransitionNotAllowed)
	}
	next := s.clone()
	switch ev := e.(type) {
	case StartBooking:
		next.View = ViewBooking
		next.Step = booking.FirstStep
		next.Errors = nil
	case Advance:
		errs := rules.Validate(s.Step, s.Draft)
		next.Errors = errs
		if !errs.Empty() {
			return next, nil
		}
		if s.Step == booking.LastStep {
			next.ShowConfirmation = true
		} else {
			next.Step = s.Step + 1
		}
	case Retreat:
		next.Step = s.Step - 1
		next.Errors = nil
	case DismissConfirmation:
		next.ShowConfirmation = false
	case ConfirmAndReset, Reset:
		next = Initial()
	case GoHome:
		next.View = ViewLanding
		next.ShowConfirmation = false
	case SetField:
		d, ok := s.Draft.With(ev.Field, ev.Value)
		if !ok {
			return s, fmt.Errorf("set field %d: %w", ev.Field, ErrTransitionNotAllowed)
		}
		next.Draft = d
	}
	return next, nil
}

func allowed(s State, e Event) bool {
	switch e.(type) {
	case StartBooking:
		return s.View == ViewLanding
	case Advance:
		return s.InBooking() && !s.ShowConfirmation
	case Retreat:
		return s.CanRetreat()
	case DismissConfirmation, ConfirmAndReset:
		return s.ShowConfirmation
	case GoHome:
		return s.InBooking()
	case SetField:
		// The overlay shows a validated draft; edits wait until it is dismissed.
		return s.InBooking() && !s.ShowConfirmation
	case Reset:
		return true
	default:
		return false
	}
}

func describe(s State) string {
	switch {
	case s.ShowConfirmation:
		return "confirmation"
	case s.InBooking():
		return fmt.Sprintf("booking step %d", s.Step)
	default:
		return string(s.View)
	}
}
