package automaton

import (
	"fmt"
	"strconv"
)

// Minimal The minimal deterministic machine equivalent to a finite one: state id stands for the
// class Class(id) of original states that no input distinguishes.
type Minimal[S, Q comparable] struct {
	Machine *Machine[S, int]
	classes [][]Q
}

// Class Returns the original states merged into state id, in state-set order.
func (m *Minimal[S, Q]) Class(id int) []Q {
	return m.classes[id]
}

func (m *Minimal[S, Q]) Len() int {
	return len(m.classes)
}

// signature is a state's class followed by the classes of its successors, one per symbol.
type signature []int

func (s signature) key() string {
	b := make([]byte, 0, len(s)*4)
	for _, v := range s {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, ',')
	}
	return string(b)
}

// Minimize
// Merges the states of a deterministic machine that accept the same inputs, using Moore's
// partition refinement over the reachable states. Unreachable states are dropped. Run Determinize
// first to minimize a non-deterministic machine.
//
// For every input, Extend on the minimal machine from the class of q ends in the class of Extend
// from q. The rule must not leave the state set.
func Minimize[S, Q comparable](m *Machine[S, Q], opts ...Option) (*Minimal[S, Q], error) {
	if !m.rule.IsDeterministic() {
		return nil, fmt.Errorf("minimize: %w", ErrNotDeterministic)
	}
	alphabet, err := m.finiteAlphabet()
	if err != nil {
		return nil, err
	}
	reachable, err := m.Reachable()
	if err != nil {
		return nil, err
	}

	// states are renumbered 0..n-1 in state-set order
	states := reachable.States()
	local := make(map[Q]int, len(states))
	for i, q := range states {
		local[q] = i
	}
	delta := make([][]int, len(states))
	for i, q := range states {
		delta[i] = make([]int, alphabet.Len())
		for j, s := range alphabet.values {
			next := m.rule.next(s, q)
			to, ok := local[next]
			if !ok {
				return nil, fmt.Errorf("%w: rule leaves the state set from %s on %s",
					ErrInvalidConfig, formatValue(q), formatValue(s))
			}
			delta[i][j] = to
		}
	}

	block := make([]int, len(states))
	count := 0
	for {
		ids := make(map[string]int)
		next := make([]int, len(states))
		for i := range states {
			sig := make(signature, 0, alphabet.Len()+1)
			if count == 0 {
				// the first partition separates accepting states only
				sig = append(sig, boolIndex(m.IsAccepting(states[i])))
			} else {
				sig = append(sig, block[i])
				for _, to := range delta[i] {
					sig = append(sig, block[to])
				}
			}
			id, ok := ids[sig.key()]
			if !ok {
				id = len(ids)
				ids[sig.key()] = id
			}
			next[i] = id
		}
		block = next
		if len(ids) == count {
			break
		}
		count = len(ids)
	}

	classes := make([][]Q, count)
	rep := make([]int, count)
	accepting := make([]int, 0)
	for i := len(states) - 1; i >= 0; i-- {
		rep[block[i]] = i
	}
	for i, q := range states {
		classes[block[i]] = append(classes[block[i]], q)
	}
	for id, i := range rep {
		if m.IsAccepting(states[i]) {
			accepting = append(accepting, id)
		}
	}

	machine, err := New(Config[S, int]{
		Alphabet:  alphabet,
		States:    Range(count),
		Accepting: NewFinite(accepting...),
		Initial:   block[local[m.initial]],
		Rule: DeterministicRule(func(s S, id int) int {
			j, _ := alphabet.Index(s)
			return block[delta[rep[id]][j]]
		}),
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &Minimal[S, Q]{Machine: machine, classes: classes}, nil
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
