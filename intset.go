package automaton

import (
	"fmt"
	"slices"
	"strings"
)

// Set is a membership test. Alphabets, state sets and accepting sets are all Sets.
type Set[T comparable] interface {
	Contains(v T) bool
}

// Predicate adapts a function to a Set, for alphabets and state spaces that cannot be listed.
type Predicate[T comparable] func(v T) bool

func (p Predicate[T]) Contains(v T) bool {
	return p(v)
}

var _ Set[int] = &Finite[int]{}

// Finite An ordered finite set. The order is significant: rules compute next states by index
// arithmetic over it, and subsets are iterated in index order.
type Finite[T comparable] struct {
	values []T
	index  map[T]int
	dups   int
}

// NewFinite Builds a finite set keeping the first occurrence of every value. Duplicates are
// counted so that configuration validation can reject them.
func NewFinite[T comparable](values ...T) *Finite[T] {
	f := &Finite[T]{
		values: make([]T, 0, len(values)),
		index:  make(map[T]int, len(values)),
	}
	for _, v := range values {
		if _, ok := f.index[v]; ok {
			f.dups++
			continue
		}
		f.index[v] = len(f.values)
		f.values = append(f.values, v)
	}
	return f
}

// Range Returns the state set 0, 1, ..., n-1.
func Range(n int) *Finite[int] {
	values := make([]int, 0, max(n, 0))
	for i := 0; i < n; i++ {
		values = append(values, i)
	}
	return NewFinite(values...)
}

// Runes Returns the alphabet made of the runes of s, in order.
func Runes(s string) *Finite[rune] {
	return NewFinite([]rune(s)...)
}

func (f *Finite[T]) Contains(v T) bool {
	_, ok := f.index[v]
	return ok
}

// Index Returns the position of v in the ordering.
func (f *Finite[T]) Index(v T) (int, bool) {
	i, ok := f.index[v]
	return i, ok
}

// At Returns the i'th value. It panics when i is out of range, like a slice would.
func (f *Finite[T]) At(i int) T {
	return f.values[i]
}

func (f *Finite[T]) Len() int {
	return len(f.values)
}

// Values Returns a copy of the values in order.
func (f *Finite[T]) Values() []T {
	values := make([]T, len(f.values))
	copy(values, f.values)
	return values
}

func (f *Finite[T]) equal(o *Finite[T]) bool {
	if f == o {
		return true
	}
	return f != nil && o != nil && slices.Equal(f.values, o.values)
}

func (f *Finite[T]) String() string {
	parts := make([]string, len(f.values))
	for i, v := range f.values {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatValue prints runes as characters rather than code points.
func formatValue(v any) string {
	if r, ok := v.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(v)
}

// mod is the non-negative remainder of a by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
