package automaton

import (
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Subset An element of the power set of a finite state set. Membership is kept as a bitset over
// state indices, so elements are unique and always iterated in ascending index order.
type Subset[Q comparable] struct {
	universe *Finite[Q]
	bits     *bitset.BitSet
}

func newSubset[Q comparable](universe *Finite[Q]) *Subset[Q] {
	return &Subset[Q]{
		universe: universe,
		bits:     bitset.New(uint(universe.Len())),
	}
}

// NewSubset Builds the subset of universe holding states. States outside the universe are
// skipped.
func NewSubset[Q comparable](universe *Finite[Q], states ...Q) *Subset[Q] {
	s := newSubset(universe)
	for _, q := range states {
		s.Add(q)
	}
	return s
}

// Add Adds q and reports whether q belongs to the universe.
func (s *Subset[Q]) Add(q Q) bool {
	i, ok := s.universe.Index(q)
	if !ok {
		return false
	}
	s.bits.Set(uint(i))
	return true
}

func (s *Subset[Q]) Contains(q Q) bool {
	i, ok := s.universe.Index(q)
	return ok && s.bits.Test(uint(i))
}

func (s *Subset[Q]) Len() int {
	return int(s.bits.Count())
}

func (s *Subset[Q]) IsEmpty() bool {
	return s.bits.None()
}

// All Iterates the states in index order.
func (s *Subset[Q]) All() iter.Seq[Q] {
	return func(yield func(Q) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(s.universe.At(int(i))) {
				return
			}
		}
	}
}

// States Returns the states in index order.
func (s *Subset[Q]) States() []Q {
	states := make([]Q, 0, s.Len())
	for q := range s.All() {
		states = append(states, q)
	}
	return states
}

// Union Adds every state of other to s.
func (s *Subset[Q]) Union(other *Subset[Q]) {
	s.bits.InPlaceUnion(other.bits)
}

// Intersects Returns true if some state of s belongs to set.
func (s *Subset[Q]) Intersects(set Set[Q]) bool {
	for q := range s.All() {
		if set.Contains(q) {
			return true
		}
	}
	return false
}

func (s *Subset[Q]) Clone() *Subset[Q] {
	return &Subset[Q]{
		universe: s.universe,
		bits:     s.bits.Clone(),
	}
}

// Equals Returns true if both subsets hold the same states of universes with the same values in
// the same order.
func (s *Subset[Q]) Equals(other *Subset[Q]) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.universe.equal(other.universe) && s.bits.Equal(other.bits)
}

// key identifies s among subsets of the same universe.
func (s *Subset[Q]) key() string {
	return s.bits.String()
}

func (s *Subset[Q]) String() string {
	parts := make([]string, 0, s.Len())
	for q := range s.All() {
		parts = append(parts, formatValue(q))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
