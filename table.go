package automaton

import (
	"cmp"
	"slices"
)

// Transition An edge of a transition table. Labels lists, in alphabet order, every symbol leading
// from Source to Dest.
type Transition struct {
	Source int
	Dest   int
	Labels []string
}

// TransitionTable A printable snapshot of a finite machine, states referred to by index.
type TransitionTable struct {
	States        []string
	Initial       int
	Accepting     []bool
	Reachable     []bool
	Current       []int
	Transitions   []Transition
	Deterministic bool
}

// Table Builds the transition table of a machine with finite alphabet and state set. Transitions
// are sorted by source, then dest.
func (m *Machine[S, Q]) Table() (*TransitionTable, error) {
	alphabet, err := m.finiteAlphabet()
	if err != nil {
		return nil, err
	}
	reachable, err := m.Reachable()
	if err != nil {
		return nil, err
	}

	n := m.finite.Len()
	table := &TransitionTable{
		States:        make([]string, n),
		Accepting:     make([]bool, n),
		Reachable:     make([]bool, n),
		Current:       m.currentIndices(),
		Deterministic: m.rule.IsDeterministic(),
	}
	table.Initial, _ = m.finite.Index(m.initial)

	for i, q := range m.finite.values {
		table.States[i] = formatValue(q)
		table.Accepting[i] = m.IsAccepting(q)
		table.Reachable[i] = reachable.Contains(q)

		edges := make(map[int]*Transition)
		for _, s := range alphabet.values {
			for _, next := range m.rule.successors(s, q) {
				dest, ok := m.finite.Index(next)
				if !ok {
					continue
				}
				e, ok := edges[dest]
				if !ok {
					e = &Transition{Source: i, Dest: dest}
					edges[dest] = e
				}
				label := formatValue(s)
				if !slices.Contains(e.Labels, label) {
					e.Labels = append(e.Labels, label)
				}
			}
		}

		row := make([]Transition, 0, len(edges))
		for _, e := range edges {
			row = append(row, *e)
		}
		slices.SortFunc(row, func(a, b Transition) int {
			return cmp.Compare(a.Dest, b.Dest)
		})
		table.Transitions = append(table.Transitions, row...)
	}
	return table, nil
}

func (m *Machine[S, Q]) currentIndices() []int {
	indices := make([]int, 0)
	if set := m.current.Subset(); set != nil {
		for i, ok := set.bits.NextSet(0); ok; i, ok = set.bits.NextSet(i + 1) {
			indices = append(indices, int(i))
		}
		return indices
	}
	if i, ok := m.finite.Index(m.current.element); ok {
		indices = append(indices, i)
	}
	return indices
}
