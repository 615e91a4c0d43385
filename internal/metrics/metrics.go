package metrics

import (
	"io"
	"strconv"

	"github.com/newcomb/automaton"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "automaton"

// Metrics holds the counter vectors shared by every machine registered with the same registry.
type Metrics struct {
	steps       *prometheus.CounterVec
	ignored     *prometheus.CounterVec
	healed      *prometheus.CounterVec
	resets      *prometheus.CounterVec
	evaluations *prometheus.CounterVec
}

// New registers the automaton counters with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Total number of single-symbol transitions applied",
		}, []string{"machine"}),
		ignored: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ignored_symbols_total",
			Help:      "Total number of input symbols skipped because they are outside the alphabet",
		}, []string{"machine"}),
		healed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "healed_states_total",
			Help:      "Total number of invalid current states replaced by the initial state",
		}, []string{"machine"}),
		resets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Total number of resets to the initial state",
		}, []string{"machine"}),
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of string evaluations by evaluator and outcome",
		}, []string{"machine", "evaluator", "accepted"}),
	}
}

// Collector Records the events of one machine. It implements automaton.Observer.
type Collector struct {
	machine     string
	steps       prometheus.Counter
	ignored     prometheus.Counter
	healed      prometheus.Counter
	resets      prometheus.Counter
	evaluations *prometheus.CounterVec
}

var _ automaton.Observer = (*Collector)(nil)

// Collector returns the observer for the named machine.
func (m *Metrics) Collector(machine string) *Collector {
	if machine == "" {
		machine = "unknown"
	}
	return &Collector{
		machine:     machine,
		steps:       m.steps.WithLabelValues(machine),
		ignored:     m.ignored.WithLabelValues(machine),
		healed:      m.healed.WithLabelValues(machine),
		resets:      m.resets.WithLabelValues(machine),
		evaluations: m.evaluations,
	}
}

func (c *Collector) Stepped()       { c.steps.Inc() }
func (c *Collector) SymbolIgnored() { c.ignored.Inc() }
func (c *Collector) StateHealed()   { c.healed.Inc() }
func (c *Collector) Reset()         { c.resets.Inc() }

func (c *Collector) Evaluated(kind string, accepted bool) {
	c.evaluations.WithLabelValues(c.machine, kind, strconv.FormatBool(accepted)).Inc()
}

// WriteText writes every family gathered from g in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
