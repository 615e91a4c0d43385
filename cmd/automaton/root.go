package main

import (
	"fmt"

	"github.com/newcomb/automaton"
	"github.com/newcomb/automaton/internal/config"
	"github.com/newcomb/automaton/internal/log"
	"github.com/newcomb/automaton/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand.
type app struct {
	configPath  string
	logLevel    string
	dumpMetrics bool

	logger   zerolog.Logger
	file     *config.File
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "automaton",
		Short: "Run recursive automata over strings",
		Long: `Evaluates deterministic, non-deterministic, transducing and two-layer automata.
Machines are defined in a YAML file; without --config the demonstration machines F, Fn, M, M1, M2
and R are used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.dumpMetrics {
				return nil
			}
			return metrics.WriteText(cmd.OutOrStdout(), a.registry)
		},
	}

	// Persistent flags (available to all commands)
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with automaton definitions")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to LOG_LEVEL")
	cmd.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "print metrics in Prometheus text format after the command")

	cmd.AddCommand(
		newRunCmd(a),
		newSubsetCmd(a),
		newTransduceCmd(a),
		newFeedCmd(a),
		newRecognizeCmd(a),
		newGraphCmd(a),
		newListCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger = log.WithComponent(log.New(log.Config{
		Level:  a.logLevel,
		Output: cmd.ErrOrStderr(),
	}), "cli")
	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.New(a.registry)

	if a.configPath == "" {
		a.file = config.Default()
		return nil
	}
	file, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.configPath, err)
	}
	a.file = file
	a.logger.Debug().Str("path", a.configPath).Strs("automata", file.Names()).Msg("definitions loaded")
	return nil
}

// options wires the logger and metrics of the named machine.
func (a *app) options(name string) []automaton.Option {
	return []automaton.Option{
		automaton.WithLogger(log.WithMachine(a.logger, name)),
		automaton.WithObserver(a.metrics.Collector(name)),
	}
}

func (a *app) lookup(name string, kinds ...config.Kind) (*config.Definition, error) {
	d, err := a.file.Lookup(name)
	if err != nil {
		return nil, err
	}
	for _, k := range kinds {
		if d.Kind == k {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%s is a %s automaton, want one of %v", name, d.Kind, kinds)
}

// machine builds the symbol machine behind a cyclic definition. A transducer definition yields its
// underlying acceptor.
func (a *app) machine(name string) (*automaton.Machine[rune, int], error) {
	d, err := a.lookup(name, config.KindAcceptor, config.KindNonDeterministic, config.KindTransducer)
	if err != nil {
		return nil, err
	}
	if d.Kind == config.KindNonDeterministic {
		return automaton.MakeNonDeterministic(d.Cyclic(), a.options(name)...)
	}
	return automaton.MakeAcceptor(d.Cyclic(), a.options(name)...)
}

func (a *app) transducer(name string) (*automaton.Transducer[rune, int, rune], error) {
	d, err := a.lookup(name, config.KindTransducer)
	if err != nil {
		return nil, err
	}
	return automaton.MakeTransducer(d.Cyclic(), a.options(name)...)
}
