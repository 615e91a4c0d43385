package automaton

import "fmt"

// SubsetEvaluator Extends a rule dn: S×Q → 2^Q to strings by recursive subset union:
//
//	Dn(λ, q)   = {q}
//	Dn(s·t, q) = Q' ∪ ⋃_{q'∈Q'} dn(s, q')    where Q' = Dn(t, q)
//
// The union keeps Q' itself, so every intermediate set stays in the result. As with Acceptor, the
// first symbol is applied last. A deterministic rule is evaluated as dn(s, q) = {d(s, q)}.
//
// A string is accepted when Dn(t, q0) intersects the accepting set.
type SubsetEvaluator[S, Q comparable] struct {
	machine *Machine[S, Q]
}

// NewSubsetEvaluator Returns ErrUnboundedStates unless m has a Finite state set.
func NewSubsetEvaluator[S, Q comparable](m *Machine[S, Q]) (*SubsetEvaluator[S, Q], error) {
	if m.finite == nil {
		return nil, fmt.Errorf("subset evaluation: %w", ErrUnboundedStates)
	}
	return &SubsetEvaluator[S, Q]{machine: m}, nil
}

func (e *SubsetEvaluator[S, Q]) Machine() *Machine[S, Q] {
	return e.machine
}

// Extend Evaluates Dn(input, q). A start state outside the state set is replaced by the initial
// state. The current state is left alone.
func (e *SubsetEvaluator[S, Q]) Extend(input []S, q Q) *Subset[Q] {
	m := e.machine
	set := newSubset(m.finite)
	if !set.Add(q) {
		set.Add(m.healed(q))
	}
	for i := len(input) - 1; i >= 0; i-- {
		set = m.unionStep(input[i], set)
	}
	return set
}

// Run Extends from the current state and installs the resulting set as the current state. A
// current state that is already a set is healed to the initial state first.
func (e *SubsetEvaluator[S, Q]) Run(input []S) *Subset[Q] {
	m := e.machine
	set := e.Extend(input, m.heal(m.current))
	m.current = Multiple(set)
	m.observer.Evaluated("subset", set.Intersects(m.accepting))
	return set
}

// Accepts Returns true if Dn(input, q0) ∩ A is not empty. Like Acceptor.Accepts it reports no
// observer events.
func (e *SubsetEvaluator[S, Q]) Accepts(input []S) bool {
	quiet := &SubsetEvaluator[S, Q]{machine: e.machine.quiet()}
	return quiet.Extend(input, e.machine.initial).Intersects(e.machine.accepting)
}
