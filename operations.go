package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// DefaultDeterminizeWorkLimit A decent default for Determinize if you don't otherwise know what to
// specify.
const DefaultDeterminizeWorkLimit = 10000

// Reachable Returns the states reachable from the initial state under any string. Both the
// alphabet and the state set must be finite.
func (m *Machine[S, Q]) Reachable() (*Subset[Q], error) {
	alphabet, err := m.finiteAlphabet()
	if err != nil {
		return nil, err
	}
	if m.finite == nil {
		return nil, ErrUnboundedStates
	}

	start, _ := m.finite.Index(m.initial)
	seen := bitset.New(uint(m.finite.Len()))
	seen.Set(uint(start))
	workList := []int{start}

	for len(workList) > 0 {
		q := m.finite.At(workList[0])
		workList = workList[1:]

		for _, s := range alphabet.values {
			for _, next := range m.rule.successors(s, q) {
				i, ok := m.finite.Index(next)
				if ok && !seen.Test(uint(i)) {
					seen.Set(uint(i))
					workList = append(workList, i)
				}
			}
		}
	}
	return &Subset[Q]{universe: m.finite, bits: seen}, nil
}

func (m *Machine[S, Q]) finiteAlphabet() (*Finite[S], error) {
	alphabet, ok := m.alphabet.(*Finite[S])
	if !ok {
		return nil, ErrUnboundedAlphabet
	}
	return alphabet, nil
}

// Powerset The result of the subset construction: a deterministic machine whose state i stands for
// the subset Subset(i) of the original state set.
type Powerset[S, Q comparable] struct {
	Machine *Machine[S, int]
	subsets []*Subset[Q]
}

// Subset Returns the set of original states behind state id.
func (p *Powerset[S, Q]) Subset(id int) *Subset[Q] {
	return p.subsets[id]
}

func (p *Powerset[S, Q]) Len() int {
	return len(p.subsets)
}

// Determinize Builds the deterministic machine over the subsets reachable from {q0} under the
// subset-union step P ↦ P ∪ ⋃_{q∈P} dn(s, q). Extending it with an Acceptor from state 0 yields
// the id of the set SubsetEvaluator.Extend computes from q0, for every input. A subset is accepting
// when it intersects the original accepting set.
//
// workLimit bounds the total size of the subsets explored; ErrTooComplex is returned beyond it.
// The construction is exponential in the number of states in the worst case. It reports no
// observer events.
func Determinize[S, Q comparable](m *Machine[S, Q], workLimit int, opts ...Option) (*Powerset[S, Q], error) {
	alphabet, err := m.finiteAlphabet()
	if err != nil {
		return nil, err
	}
	if m.finite == nil {
		return nil, ErrUnboundedStates
	}

	initialSet := NewSubset(m.finite, m.initial)
	subsets := []*Subset[Q]{initialSet}
	ids := map[string]int{initialSet.key(): 0}
	quiet := m.quiet()

	// delta[id][i] is the state reached from id on the i'th symbol.
	delta := make([][]int, 0)
	workList := []int{0}
	work := 0

	for len(workList) > 0 {
		id := workList[0]
		workList = workList[1:]

		row := make([]int, alphabet.Len())
		for i, s := range alphabet.values {
			next := quiet.unionStep(s, subsets[id])
			work += next.Len()
			if work > workLimit {
				return nil, fmt.Errorf("%w: more than %d units of work", ErrTooComplex, workLimit)
			}

			to, ok := ids[next.key()]
			if !ok {
				to = len(subsets)
				subsets = append(subsets, next)
				ids[next.key()] = to
				workList = append(workList, to)
			}
			row[i] = to
		}
		// ids are handed out in work list order, so id == len(delta)
		delta = append(delta, row)
	}

	accepting := make([]int, 0)
	for id, set := range subsets {
		if set.Intersects(m.accepting) {
			accepting = append(accepting, id)
		}
	}

	machine, err := New(Config[S, int]{
		Alphabet:  alphabet,
		States:    Range(len(subsets)),
		Accepting: NewFinite(accepting...),
		Initial:   0,
		Rule: DeterministicRule(func(s S, q int) int {
			i, _ := alphabet.Index(s)
			return delta[q][i]
		}),
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &Powerset[S, Q]{Machine: machine, subsets: subsets}, nil
}
