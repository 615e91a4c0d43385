package automaton

import "fmt"

// State The current state of a machine: a single element of the state set, or, once a
// non-deterministic rule has run, a subset of it. A set is never an element, even a singleton.
type State[Q comparable] struct {
	element Q
	set     *Subset[Q]
}

// Single Returns the state holding element q.
func Single[Q comparable](q Q) State[Q] {
	return State[Q]{element: q}
}

// Multiple Returns the state holding set s.
func Multiple[Q comparable](s *Subset[Q]) State[Q] {
	return State[Q]{set: s}
}

func (s State[Q]) IsSet() bool {
	return s.set != nil
}

// Element Returns the element and true, or false when the state is a set.
func (s State[Q]) Element() (Q, bool) {
	if s.set != nil {
		var zero Q
		return zero, false
	}
	return s.element, true
}

// Subset Returns the set, or nil when the state is an element.
func (s State[Q]) Subset() *Subset[Q] {
	return s.set
}

func (s State[Q]) String() string {
	if s.set != nil {
		return s.set.String()
	}
	return fmt.Sprint(s.element)
}
