package automaton

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts Observer events.
type recorder struct {
	steps, ignored, healed, resets int
	evaluations                    []string
}

func (r *recorder) Stepped()       { r.steps++ }
func (r *recorder) SymbolIgnored() { r.ignored++ }
func (r *recorder) StateHealed()   { r.healed++ }
func (r *recorder) Reset()         { r.resets++ }
func (r *recorder) Evaluated(kind string, accepted bool) {
	r.evaluations = append(r.evaluations, fmt.Sprintf("%s:%t", kind, accepted))
}

func newOctal(t *testing.T, opts ...Option) *Machine[rune, int] {
	t.Helper()
	m, err := MakeAcceptor(Octal(""), opts...)
	require.NoError(t, err)
	return m
}

func TestMachineStep(t *testing.T) {
	t.Run("AddsSymbolModuloStates", func(t *testing.T) {
		m := newOctal(t)
		assert.Equal(t, Single(3), m.Step('3'))
		assert.Equal(t, Single(2), m.Step('7'))
		assert.Equal(t, Single(2), m.Current())
	})

	t.Run("SymbolOutsideAlphabetIsNoop", func(t *testing.T) {
		rec := &recorder{}
		m := newOctal(t, WithObserver(rec))
		m.Step('5')
		assert.Equal(t, Single(5), m.Step('8'))
		assert.Equal(t, Single(5), m.Step('x'))
		assert.Equal(t, 2, rec.ignored)
		assert.Equal(t, 1, rec.steps)
	})

	t.Run("HealsStateOutsideStateSet", func(t *testing.T) {
		rec := &recorder{}
		m := newOctal(t, WithObserver(rec))
		m.SetCurrent(42)
		assert.Equal(t, Single(1), m.Step('1'))
		assert.Equal(t, 1, rec.healed)
	})

	t.Run("NonDeterministicStepYieldsSet", func(t *testing.T) {
		rec := &recorder{}
		m, err := MakeNonDeterministic(Octal(""), WithObserver(rec))
		require.NoError(t, err)

		st := m.Step('1')
		require.True(t, st.IsSet())
		assert.Equal(t, []int{0, 1}, st.Subset().States())
		_, ok := st.Element()
		assert.False(t, ok)

		// a set is not an element of the state set, so the next step starts over from q0
		st = m.Step('2')
		assert.Equal(t, []int{0, 1, 2}, st.Subset().States())
		assert.Equal(t, 1, rec.healed)
	})
}

func TestMachineCyclicGroupAction(t *testing.T) {
	m := newOctal(t)
	for q := 0; q < 8; q++ {
		for s1 := 0; s1 < 8; s1++ {
			for s2 := 0; s2 < 8; s2++ {
				m.SetCurrent(q)
				m.Step(rune('0' + s1))
				got := m.Step(rune('0' + s2))

				m.SetCurrent(q)
				want := m.Step(rune('0' + (s1+s2)%8))
				assert.Equal(t, want, got, "q=%d s1=%d s2=%d", q, s1, s2)
			}
		}
	}
}

func TestMachineReset(t *testing.T) {
	rec := &recorder{}
	m := newOctal(t, WithObserver(rec))

	for _, prior := range []int{0, 3, 7, -1, 100} {
		m.SetCurrent(prior)
		m.Reset()
		assert.Equal(t, Single(m.Initial()), m.Current())
	}
	m.Reset()
	assert.Equal(t, Single(0), m.Current())
	assert.Equal(t, 6, rec.resets)
}

func TestMachineAcceptingBoundary(t *testing.T) {
	m := newOctal(t)
	tests := []struct {
		state int
		want  bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{5, true},
		{6, false},
		{7, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsAccepting(tt.state))
			assert.Equal(t, tt.want, m.Accepts(Single(tt.state)))
		})
	}

	t.Run("SetsAcceptByIntersection", func(t *testing.T) {
		states := Range(8)
		assert.True(t, m.Accepts(Multiple(NewSubset(states, 0, 1, 2))))
		assert.False(t, m.Accepts(Multiple(NewSubset(states, 0, 1, 6))))
		assert.False(t, m.Accepts(Multiple(NewSubset(states))))
	})
}

func TestConfigValidate(t *testing.T) {
	states := Range(8)
	rule := CyclicRule(func(s int) int { return s }, states)
	valid := func() Config[int, int] {
		return Config[int, int]{
			Alphabet:  Range(8),
			States:    states,
			Accepting: NewFinite(2, 3, 4, 5),
			Initial:   0,
			Rule:      rule,
		}
	}

	tests := []struct {
		name   string
		modify func(c *Config[int, int])
	}{
		{"MissingAlphabet", func(c *Config[int, int]) { c.Alphabet = nil }},
		{"MissingStates", func(c *Config[int, int]) { c.States = nil }},
		{"MissingAccepting", func(c *Config[int, int]) { c.Accepting = nil }},
		{"MissingRule", func(c *Config[int, int]) { c.Rule = Rule[int, int]{} }},
		{"EmptyStates", func(c *Config[int, int]) { c.States = NewFinite[int]() }},
		{"DuplicateStates", func(c *Config[int, int]) { c.States = NewFinite(0, 1, 1, 2) }},
		{"InitialOutsideStates", func(c *Config[int, int]) { c.Initial = 8 }},
		{"AcceptingOutsideStates", func(c *Config[int, int]) { c.Accepting = NewFinite(2, 9) }},
		{"NonDeterministicOverPredicate", func(c *Config[int, int]) {
			c.States = Predicate[int](func(q int) bool { return q >= 0 })
			c.Rule = PrefixRule(func(s int) int { return s }, states)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			m, err := New(c)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}

	t.Run("Valid", func(t *testing.T) {
		m, err := New(valid())
		require.NoError(t, err)
		assert.Equal(t, Single(0), m.Current())
		assert.Equal(t, KindDeterministic, m.Rule().Kind())
	})

	t.Run("PredicateAcceptingIsNotEnumerated", func(t *testing.T) {
		c := valid()
		c.Accepting = Predicate[int](func(q int) bool { return q > 100 })
		_, err := New(c)
		assert.NoError(t, err)
	})
}
