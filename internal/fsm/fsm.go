package fsm

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a machine is built without transitions.
	ErrEmptyTable = errors.New("fsm: transition table is empty")
	// ErrNilGuard is returned when a transition has no guard.
	ErrNilGuard = errors.New("fsm: transition guard is nil")
)

// State identifies a state inside one transition table.
type State int

// Guard gates a transition. Guards read collaborator state only.
type Guard func() bool

// Action runs when its transition fires, before the state changes.
type Action func()

// Transition is one row of a transition table.
type Transition struct {
	From   State
	Guard  Guard
	To     State
	Action Action // optional
}

// Steppable is anything the scheduler can drive one cycle at a time.
type Steppable interface {
	Step() bool
}

// FSM is a polled, table-driven state machine.
//
// Step scans the table in declaration order and fires the first transition
// whose source state matches the current state and whose guard holds.
// At most one transition fires per call.
type FSM struct {
	current State
	table   []Transition
}

// New builds a machine starting in initial.
func New(initial State, table []Transition) (*FSM, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	for i, t := range table {
		if t.Guard == nil {
			return nil, fmt.Errorf("transition %d (%d -> %d): %w", i, t.From, t.To, ErrNilGuard)
		}
	}
	rows := make([]Transition, len(table))
	copy(rows, table)
	return &FSM{current: initial, table: rows}, nil
}

// Step evaluates the table once. It reports whether a transition fired.
func (f *FSM) Step() bool {
	for i := range f.table {
		t := &f.table[i]
		if t.From != f.current || !t.Guard() {
			continue
		}
		if t.Action != nil {
			t.Action()
		}
		f.current = t.To
		return true
	}
	return false
}

// Current returns the current state.
func (f *FSM) Current() State {
	return f.current
}
