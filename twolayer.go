package automaton

import "math"

// Pair The state of a two-layer automaton: a recognition value and an abstraction flag in
// {-1, 0, 1}.
type Pair struct {
	Recognition float64
	Abstraction int
}

// Cycle Reports one recognition event: the state reached after abstraction, before the reset.
type Cycle struct {
	Peak       Pair
	Abstracted bool
}

// TwoLayer A recognition layer gating an abstraction layer. A stimulus first updates the
// recognition value; if the result is recognized the abstraction update runs, the cycle is
// reported, and the whole state returns to Initial. The machine is an ordinary deterministic
// Machine over real-valued stimuli.
type TwoLayer struct {
	Initial    Pair
	Recognize  func(stimulus float64, q Pair) Pair
	Recognized func(q Pair) bool
	Abstract   func(q Pair) Pair
	Abstracted func(q Pair) bool
	OnCycle    func(c Cycle)
}

// DefaultTwoLayer Stimuli accumulate into the recognition value, which is recognized once its
// magnitude exceeds threshold. Abstraction raises the flag to 1 for positive recognitions only.
func DefaultTwoLayer(threshold float64) TwoLayer {
	return TwoLayer{
		Recognize: func(stimulus float64, q Pair) Pair {
			q.Recognition += stimulus
			return q
		},
		Recognized: func(q Pair) bool {
			return q.Recognition > threshold || q.Recognition < -threshold
		},
		Abstract: func(q Pair) Pair {
			if q.Recognition > threshold {
				q.Abstraction = 1
			}
			return q
		},
		Abstracted: func(q Pair) bool {
			return q.Abstraction == 1
		},
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Config Returns the machine configuration. The accepting set is the recognition predicate; since
// every recognized state is reset within the same step, a running machine reports cycles through
// OnCycle rather than by resting in an accepting state.
func (l TwoLayer) Config() Config[float64, Pair] {
	rule := DeterministicRule(func(stimulus float64, q Pair) Pair {
		q = l.Recognize(stimulus, q)
		if !l.Recognized(q) {
			return q
		}
		q = l.Abstract(q)
		if l.OnCycle != nil {
			l.OnCycle(Cycle{Peak: q, Abstracted: l.Abstracted(q)})
		}
		return l.Initial
	})

	return Config[float64, Pair]{
		Alphabet: Predicate[float64](finite),
		States: Predicate[Pair](func(q Pair) bool {
			return finite(q.Recognition) && q.Abstraction >= -1 && q.Abstraction <= 1
		}),
		Accepting: Predicate[Pair](l.Recognized),
		Initial:   l.Initial,
		Rule:      rule,
	}
}
