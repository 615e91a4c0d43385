package automaton

import "fmt"

// Acceptor Extends a deterministic machine's single-symbol rule d to strings:
//
//	D(λ, q)   = q
//	D(s·t, q) = d(s, D(t, q))
//
// where s is the first symbol and t the rest of the input. The first symbol is applied last, so
// symbols take effect from right to left. Under a commutative rule (CyclicRule) this cannot be
// observed; under any other rule D("ab", q) is d(a, d(b, q)), not d(b, d(a, q)).
type Acceptor[S, Q comparable] struct {
	machine *Machine[S, Q]
}

// NewAcceptor Returns ErrNotDeterministic if m uses a non-deterministic rule.
func NewAcceptor[S, Q comparable](m *Machine[S, Q]) (*Acceptor[S, Q], error) {
	if !m.rule.IsDeterministic() {
		return nil, fmt.Errorf("acceptor over a %s rule: %w", m.rule.Kind(), ErrNotDeterministic)
	}
	return &Acceptor[S, Q]{machine: m}, nil
}

func (a *Acceptor[S, Q]) Machine() *Machine[S, Q] {
	return a.machine
}

// Extend Evaluates D(input, q) without touching the machine's current state. The recursion on the
// tail is evaluated as a fold from the last symbol to the first, so long inputs do not grow the
// stack.
func (a *Acceptor[S, Q]) Extend(input []S, q Q) Q {
	for i := len(input) - 1; i >= 0; i-- {
		q = a.machine.transition(input[i], q)
	}
	return q
}

// Run Extends from the current state and installs the result as the new current state.
func (a *Acceptor[S, Q]) Run(input []S) Q {
	m := a.machine
	q := a.Extend(input, a.start())
	m.current = Single(q)
	m.observer.Evaluated("acceptor", m.IsAccepting(q))
	return q
}

// start is the element held by the current state. A set left by a non-deterministic evaluation
// heals to the initial state.
func (a *Acceptor[S, Q]) start() Q {
	if q, ok := a.machine.current.Element(); ok {
		return q
	}
	return a.machine.heal(a.machine.current)
}

// Accepts Returns true if D(input, q0) is accepting. The current state is left alone and no
// observer events are reported.
func (a *Acceptor[S, Q]) Accepts(input []S) bool {
	quiet := &Acceptor[S, Q]{machine: a.machine.quiet()}
	return a.machine.IsAccepting(quiet.Extend(input, a.machine.initial))
}

// Run Returns true if the deterministic machine accepts input from its initial state. A
// non-deterministic machine accepts when the reachable set intersects the accepting set.
func Run[S, Q comparable](m *Machine[S, Q], input []S) bool {
	if m.rule.IsDeterministic() {
		return (&Acceptor[S, Q]{machine: m}).Accepts(input)
	}
	return (&SubsetEvaluator[S, Q]{machine: m}).Accepts(input)
}
