package automaton

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config The static definition of a machine: input alphabet S, state set Q, accepting subset A,
// initial state q0 and the single-symbol rule.
type Config[S, Q comparable] struct {
	Alphabet  Set[S]
	States    Set[Q]
	Accepting Set[Q]
	Initial   Q
	Rule      Rule[S, Q]
}

// Validate Checks that the parts of the configuration agree. Only finite sets can be checked
// member by member.
func (c Config[S, Q]) Validate() error {
	switch {
	case c.Alphabet == nil:
		return fmt.Errorf("%w: alphabet is required", ErrInvalidConfig)
	case c.States == nil:
		return fmt.Errorf("%w: state set is required", ErrInvalidConfig)
	case c.Accepting == nil:
		return fmt.Errorf("%w: accepting set is required", ErrInvalidConfig)
	case !c.Rule.isSet():
		return fmt.Errorf("%w: transition rule is required", ErrInvalidConfig)
	}

	finite, isFinite := c.States.(*Finite[Q])
	if isFinite {
		if finite.Len() == 0 {
			return fmt.Errorf("%w: state set is empty", ErrInvalidConfig)
		}
		if finite.dups > 0 {
			return fmt.Errorf("%w: state set lists %d duplicate states", ErrInvalidConfig, finite.dups)
		}
	}
	if !isFinite && c.Rule.Kind() == KindNonDeterministic {
		return fmt.Errorf("%w: a %s rule needs a finite state set", ErrInvalidConfig, c.Rule.Kind())
	}

	if !c.States.Contains(c.Initial) {
		return fmt.Errorf("%w: initial state %s is not in the state set", ErrInvalidConfig, formatValue(c.Initial))
	}
	if accepting, ok := c.Accepting.(*Finite[Q]); ok {
		for _, q := range accepting.values {
			if !c.States.Contains(q) {
				return fmt.Errorf("%w: accepting state %s is not in the state set", ErrInvalidConfig, formatValue(q))
			}
		}
	}
	return nil
}

// Machine A configured automaton and its current state. The configuration never changes after
// New; the current state is changed by Step, by the evaluators and by Reset. A Machine is not safe
// for concurrent use.
type Machine[S, Q comparable] struct {
	alphabet  Set[S]
	states    Set[Q]
	finite    *Finite[Q] // nil when states is not finite
	accepting Set[Q]
	initial   Q
	current   State[Q]
	rule      Rule[S, Q]

	logger   zerolog.Logger
	observer Observer
}

// New Validates cfg and returns a machine in its initial state. Configuration errors wrap
// ErrInvalidConfig.
func New[S, Q comparable](cfg Config[S, Q], opts ...Option) (*Machine[S, Q], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	finite, _ := cfg.States.(*Finite[Q])
	return &Machine[S, Q]{
		alphabet:  cfg.Alphabet,
		states:    cfg.States,
		finite:    finite,
		accepting: cfg.Accepting,
		initial:   cfg.Initial,
		current:   Single(cfg.Initial),
		rule:      cfg.Rule,
		logger:    o.logger,
		observer:  o.observer,
	}, nil
}

func (m *Machine[S, Q]) Alphabet() Set[S] {
	return m.alphabet
}

func (m *Machine[S, Q]) States() Set[Q] {
	return m.states
}

func (m *Machine[S, Q]) AcceptingSet() Set[Q] {
	return m.accepting
}

func (m *Machine[S, Q]) Initial() Q {
	return m.initial
}

func (m *Machine[S, Q]) Rule() Rule[S, Q] {
	return m.rule
}

func (m *Machine[S, Q]) Current() State[Q] {
	return m.current
}

// SetCurrent Installs q as the current state without validation. A state outside the state set is
// replaced by the initial state on the next transition.
func (m *Machine[S, Q]) SetCurrent(q Q) {
	m.current = Single(q)
}

// Reset Restores the initial state.
func (m *Machine[S, Q]) Reset() {
	m.current = Single(m.initial)
	m.observer.Reset()
}

// IsAccepting Returns true if q is an element of the accepting set.
func (m *Machine[S, Q]) IsAccepting(q Q) bool {
	return m.accepting.Contains(q)
}

// Accepts Returns true if st is accepting: an element must belong to the accepting set, a set must
// intersect it. A set is never itself a member of the accepting set.
func (m *Machine[S, Q]) Accepts(st State[Q]) bool {
	if set := st.Subset(); set != nil {
		return set.Intersects(m.accepting)
	}
	return m.IsAccepting(st.element)
}

// Accepting Reports whether the current state is accepting.
func (m *Machine[S, Q]) Accepting() bool {
	return m.Accepts(m.current)
}

// Step Applies the rule to a single symbol and the current state. A symbol outside the alphabet
// leaves the state unchanged. A current state that is not an element of the state set, including
// a set left by an earlier non-deterministic step, is first reset to the initial state.
func (m *Machine[S, Q]) Step(s S) State[Q] {
	if !m.alphabet.Contains(s) {
		m.ignored(s)
		return m.current
	}

	q := m.heal(m.current)
	if m.rule.IsDeterministic() {
		m.current = Single(m.rule.next(s, q))
	} else {
		m.current = Multiple(m.successors(s, q))
	}
	m.observer.Stepped()
	return m.current
}

// quiet is a view of m that reports no observer events. Queries evaluate through it so that
// counters only reflect evaluations that move the machine. It shares m's rule, so callbacks inside
// the rule itself (TwoLayer's OnCycle) still fire.
func (m *Machine[S, Q]) quiet() *Machine[S, Q] {
	c := *m
	c.observer = nopObserver{}
	return &c
}

// transition is d with the no-op and healing policies applied.
func (m *Machine[S, Q]) transition(s S, q Q) Q {
	if !m.alphabet.Contains(s) {
		m.ignored(s)
		return q
	}
	if !m.states.Contains(q) {
		q = m.healed(q)
	}
	m.observer.Stepped()
	return m.rule.next(s, q)
}

// successors is dn(s, q) as a subset. s must already be in the alphabet.
func (m *Machine[S, Q]) successors(s S, q Q) *Subset[Q] {
	if !m.states.Contains(q) {
		q = m.healed(q)
	}
	set := newSubset(m.finite)
	for _, next := range m.rule.successors(s, q) {
		if !set.Add(next) {
			m.logger.Warn().
				Str("symbol", formatValue(s)).
				Str("state", formatValue(next)).
				Msg("rule produced a state outside the state set; dropped")
		}
	}
	m.observer.Stepped()
	return set
}

// unionStep is one level of the subset recursion: P ∪ ⋃_{q∈P} dn(s, q).
func (m *Machine[S, Q]) unionStep(s S, set *Subset[Q]) *Subset[Q] {
	next := set.Clone()
	if !m.alphabet.Contains(s) {
		m.ignored(s)
		return next
	}
	for q := range set.All() {
		next.Union(m.successors(s, q))
	}
	return next
}

// heal returns the element held by st, or the initial state when st is a set or an invalid element.
func (m *Machine[S, Q]) heal(st State[Q]) Q {
	if q, ok := st.Element(); ok && m.states.Contains(q) {
		return q
	}
	m.observer.StateHealed()
	m.logger.Warn().Str("state", st.String()).Msg("current state not in state set; reset to initial")
	return m.initial
}

func (m *Machine[S, Q]) healed(q Q) Q {
	return m.heal(Single(q))
}

func (m *Machine[S, Q]) ignored(s S) {
	m.observer.SymbolIgnored()
	m.logger.Debug().Str("symbol", formatValue(s)).Msg("symbol outside alphabet ignored")
}
