package automaton

import "errors"

// ErrInvalidConfig is returned by New when the alphabet, state set, accepting set, initial state or
// rule do not fit together.
var ErrInvalidConfig = errors.New("invalid automaton configuration")

// ErrNotDeterministic is returned when a deterministic evaluator is built over a rule that returns
// sets of states.
var ErrNotDeterministic = errors.New("transition rule is not deterministic")

// ErrUnboundedStates is returned when an operation needs to enumerate a state set given as a
// predicate.
var ErrUnboundedStates = errors.New("state set is not finite")

// ErrUnboundedAlphabet is returned when an operation needs to enumerate an alphabet given as a
// predicate.
var ErrUnboundedAlphabet = errors.New("alphabet is not finite")

// ErrTooComplex is returned when the subset construction exceeds its work limit.
var ErrTooComplex = errors.New("automaton is too complex to determinize")
