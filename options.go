package automaton

import "github.com/rs/zerolog"

// Observer receives the events of a machine. Implementations must be cheap; they are called on
// every transition.
type Observer interface {
	// Stepped is called for every single-symbol transition applied.
	Stepped()
	// SymbolIgnored is called when a symbol outside the alphabet is skipped.
	SymbolIgnored()
	// StateHealed is called when a current state outside the state set is replaced by the initial state.
	StateHealed()
	Reset()
	// Evaluated is called once per string evaluation; kind names the evaluator.
	Evaluated(kind string, accepted bool)
}

type nopObserver struct{}

func (nopObserver) Stepped()               {}
func (nopObserver) SymbolIgnored()         {}
func (nopObserver) StateHealed()           {}
func (nopObserver) Reset()                 {}
func (nopObserver) Evaluated(string, bool) {}

type options struct {
	logger   zerolog.Logger
	observer Observer
}

type Option func(*options)

// WithLogger Logs ignored symbols (debug) and healed states (warn). Machines are silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithObserver Registers an Observer, e.g. a metrics collector.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger:   zerolog.Nop(),
		observer: nopObserver{},
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}
