package menu

import (
	"fmt"
	"slices"
)

// State represents a run-loop state.
type State string

const (
	StateDisplaying     State = "DISPLAYING"
	StateAwaitingInput  State = "AWAITING_INPUT"
	StateDispatching    State = "DISPATCHING"
	StateTerminatedBack State = "TERMINATED_BACK"
	StateTerminatedQuit State = "TERMINATED_QUIT"
)

// validTransitions defines allowed run-loop transitions. The self loop
// on AWAITING_INPUT is the invalid-input reprompt; AWAITING_INPUT back
// to DISPLAYING is the help token, which redisplays without
// dispatching.
var validTransitions = map[State][]State{
	StateDisplaying:    {StateAwaitingInput},
	StateAwaitingInput: {StateAwaitingInput, StateDispatching, StateDisplaying, StateTerminatedBack, StateTerminatedQuit},
	StateDispatching:   {StateDisplaying, StateTerminatedQuit},
}

// Machine tracks and enforces run-loop state transitions. The loop is
// strictly single threaded, so there is no locking.
type Machine struct {
	current State
}

// NewMachine creates a machine starting in the Displaying state.
func NewMachine() *Machine {
	return &Machine{current: StateDisplaying}
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// Transition attempts to move to a new state. Returns an error if the
// transition is invalid.
func (m *Machine) Transition(to State) error {
	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	m.current = to
	return nil
}
