package wizard

import "github.com/cleanco/cleanco/internal/booking"

// Machine holds the current wizard state and applies events to it. It is
// meant to be driven from a single event loop and takes no locks.
type Machine struct {
	state     State
	rules     booking.Rules
	observers []func(State)
}

// NewMachine starts a machine in the initial state.
func NewMachine(rules booking.Rules) *Machine {
	return &Machine{state: Initial(), rules: rules}
}

// State returns a snapshot of the current state.
func (m *Machine) State() State { return m.state.clone() }

// Rules returns the validation rules in use.
func (m *Machine) Rules() booking.Rules { return m.rules }

// Dispatch applies e. When the event is not allowed the state is left
// untouched, observers are not called and the error wraps
// ErrTransitionNotAllowed.
func (m *Machine) Dispatch(e Event) (State, error) {
	next, err := Apply(m.state, e, m.rules)
	if err != nil {
		return m.State(), err
	}
	m.state = next
	snapshot := m.State()
	for _, fn := range m.observers {
		fn(snapshot.clone())
	}
	return snapshot, nil
}

// Subscribe registers fn to receive every new state. The returned func
// removes it.
func (m *Machine) Subscribe(fn func(State)) (unsubscribe func()) {
	m.observers = append(m.observers, fn)
	idx := len(m.observers) - 1
	return func() {
		if idx < len(m.observers) {
			m.observers[idx] = func(State) {}
		}
	}
}
