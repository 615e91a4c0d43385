package automaton

import "fmt"

// OutputRule The output function m: S×Q → T of a transducer, plus Echo, the output produced for a
// state alone, which ends every output string.
type OutputRule[S, Q, T comparable] struct {
	Emit func(s S, q Q) T
	Echo func(q Q) T
}

// CyclicOutput m(s, q) = T[(value(s) + index(q)) mod |T|] and Echo(q) = T[index(q) mod |T|]. It
// computes on any symbol, member of the input alphabet or not. A state outside states has index 0;
// Transducer never passes one, as it heals the current state first.
func CyclicOutput[S, Q, T comparable](value func(S) int, states *Finite[Q], output *Finite[T]) OutputRule[S, Q, T] {
	index := func(q Q) int {
		i, _ := states.Index(q)
		return i
	}
	return OutputRule[S, Q, T]{
		Emit: func(s S, q Q) T {
			return output.At(mod(value(s)+index(q), output.Len()))
		},
		Echo: func(q Q) T {
			return output.At(mod(index(q), output.Len()))
		},
	}
}

// Transducer A deterministic machine with an output rule. Output is only produced for accepted
// input.
type Transducer[S, Q, T comparable] struct {
	acceptor *Acceptor[S, Q]
	output   OutputRule[S, Q, T]
}

// NewTransducer Returns ErrNotDeterministic for non-deterministic machines and ErrInvalidConfig if
// either output function is missing.
func NewTransducer[S, Q, T comparable](m *Machine[S, Q], output OutputRule[S, Q, T]) (*Transducer[S, Q, T], error) {
	acceptor, err := NewAcceptor(m)
	if err != nil {
		return nil, err
	}
	if output.Emit == nil || output.Echo == nil {
		return nil, fmt.Errorf("%w: output rule needs Emit and Echo", ErrInvalidConfig)
	}
	return &Transducer[S, Q, T]{acceptor: acceptor, output: output}, nil
}

func (t *Transducer[S, Q, T]) Machine() *Machine[S, Q] {
	return t.acceptor.machine
}

func (t *Transducer[S, Q, T]) Acceptor() *Acceptor[S, Q] {
	return t.acceptor
}

// Emit Evaluates the output recursion
//
//	M(λ)   = Echo(q)
//	M(s·t) = M(t) ++ m(s, q)
//
// where q is read from the machine's current state at every level, not captured once. The output
// of the first symbol comes last. There is no alphabet check here: m is applied to every symbol.
// A current state outside the state set is reset to the initial state, as Step does.
func (t *Transducer[S, Q, T]) Emit(input []S) []T {
	out := make([]T, 0, len(input)+1)
	out = append(out, t.output.Echo(t.live()))
	for i := len(input) - 1; i >= 0; i-- {
		out = append(out, t.output.Emit(input[i], t.live()))
	}
	return out
}

func (t *Transducer[S, Q, T]) live() Q {
	m := t.acceptor.machine
	if q, ok := m.current.Element(); ok && m.states.Contains(q) {
		return q
	}
	q := m.heal(m.current)
	m.current = Single(q)
	return q
}

// Transduce Runs input through the machine. Rejected input yields no output. For accepted input
// the machine is reset before the output is computed, so output and transition both start from the
// initial state; computing it before the reset gives a different string. The machine is always
// left in its initial state.
func (t *Transducer[S, Q, T]) Transduce(input []S) []T {
	m := t.acceptor.machine
	final := t.acceptor.Extend(input, t.acceptor.start())
	m.current = Single(final)

	accepted := m.IsAccepting(final)
	m.observer.Evaluated("transducer", accepted)
	m.Reset()
	if !accepted {
		return nil
	}
	return t.Emit(input)
}

// Feed Connects transducers in a loop: within a round each stage emits on the previous stage's
// output, and the last stage's output is the next round's input. Stages use Emit, so they answer
// with their current state whether or not the input is accepted. The output of every round is
// returned. A transducer may appear more than once to observe itself.
//
// Symbols and states combine by index arithmetic, never by text: from state 1 the symbol '2' emits
// '3' under CyclicOutput, not "12".
func Feed[S, Q comparable](rounds int, input []S, stages ...*Transducer[S, Q, S]) [][]S {
	outputs := make([][]S, 0, max(rounds, 0))
	for i := 0; i < rounds; i++ {
		for _, stage := range stages {
			input = stage.Emit(input)
		}
		outputs = append(outputs, input)
	}
	return outputs
}
