package automaton

import "fmt"

// CyclicConfig Describes the modular-arithmetic family of machines: symbols are the runes of
// Alphabet valued by their position, states are 0..States-1, and transitions add the symbol value
// to the state index modulo States.
type CyclicConfig struct {
	Alphabet  string
	States    int
	Accepting []int
	Initial   int
	// Output is the output alphabet of transducers, one symbol per rune.
	Output string
}

// Automata Factory for the canned machines.
type Automata struct {
}

var defaultAutomata = &Automata{}

func (c CyclicConfig) config(rule func(value func(rune) int, states *Finite[int]) Rule[rune, int]) Config[rune, int] {
	alphabet := Runes(c.Alphabet)
	states := Range(c.States)
	return Config[rune, int]{
		Alphabet:  alphabet,
		States:    states,
		Accepting: NewFinite(c.Accepting...),
		Initial:   c.Initial,
		Rule:      rule(SymbolValue(alphabet), states),
	}
}

// MakeAcceptor
// Returns a deterministic machine with d(s, q) = (value(s) + q) mod States.
func (*Automata) MakeAcceptor(c CyclicConfig, opts ...Option) (*Machine[rune, int], error) {
	return New(c.config(CyclicRule[rune, int]), opts...)
}

// MakeNonDeterministic
// Returns a machine with dn(s, q) = {0, ..., (value(s) + q) mod States}.
func (*Automata) MakeNonDeterministic(c CyclicConfig, opts ...Option) (*Machine[rune, int], error) {
	return New(c.config(PrefixRule[rune, int]), opts...)
}

// MakeTransducer
// Returns MakeAcceptor's machine with output m(s, q) = Output[(value(s) + q) mod |Output|].
func (a *Automata) MakeTransducer(c CyclicConfig, opts ...Option) (*Transducer[rune, int, rune], error) {
	if c.Output == "" {
		return nil, fmt.Errorf("%w: transducer needs an output alphabet", ErrInvalidConfig)
	}
	m, err := a.MakeAcceptor(c, opts...)
	if err != nil {
		return nil, err
	}
	output := Runes(c.Output)
	return NewTransducer(m, CyclicOutput(SymbolValue(Runes(c.Alphabet)), m.finite, output))
}

// MakeRecognitionAbstraction
// Returns the two-layer machine described by l.
func (*Automata) MakeRecognitionAbstraction(l TwoLayer, opts ...Option) (*Machine[float64, Pair], error) {
	if l.Recognize == nil || l.Recognized == nil || l.Abstract == nil || l.Abstracted == nil {
		return nil, fmt.Errorf("%w: two-layer machine needs all four layer functions", ErrInvalidConfig)
	}
	return New(l.Config(), opts...)
}

// Octal The demonstration configuration: digits 0-7 over eight states accepting 2, 3, 4 and 5.
func Octal(output string) CyclicConfig {
	return CyclicConfig{
		Alphabet:  "01234567",
		States:    8,
		Accepting: []int{2, 3, 4, 5},
		Output:    output,
	}
}

// MakeAcceptor Shorthand for the default factory.
func MakeAcceptor(c CyclicConfig, opts ...Option) (*Machine[rune, int], error) {
	return defaultAutomata.MakeAcceptor(c, opts...)
}

func MakeNonDeterministic(c CyclicConfig, opts ...Option) (*Machine[rune, int], error) {
	return defaultAutomata.MakeNonDeterministic(c, opts...)
}

func MakeTransducer(c CyclicConfig, opts ...Option) (*Transducer[rune, int, rune], error) {
	return defaultAutomata.MakeTransducer(c, opts...)
}

func MakeRecognitionAbstraction(l TwoLayer, opts ...Option) (*Machine[float64, Pair], error) {
	return defaultAutomata.MakeRecognitionAbstraction(l, opts...)
}
