package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/newcomb/automaton"
	"github.com/newcomb/automaton/internal/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		determinize bool
		minimize    bool
		workLimit   int
		input       string
		overlay     graph.GraphOverlay
	)
	cmd := &cobra.Command{
		Use:   "graph NAME",
		Short: "Export the transition graph as a Mermaid diagram",
		Long: `Outputs a Mermaid flowchart of a finite automaton. With --determinize the graph of the
subset construction is drawn instead, each state labelled with its set. --input runs a string
first so that --current shows where it ends. --minimize merges states no input tells apart.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}

			var table *automaton.TransitionTable
			switch {
			case determinize:
				table, err = powersetTable(m, workLimit, minimize, []rune(input), a.options(args[0]+"/powerset")...)
			case minimize:
				table, err = minimalTable(m, []rune(input), strconv.Itoa, a.options(args[0]+"/minimal")...)
			default:
				table, err = machineTable(m, []rune(input))
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(table, &overlay))
			return nil
		},
	}
	cmd.Flags().BoolVar(&determinize, "determinize", false, "draw the subset construction")
	cmd.Flags().BoolVar(&minimize, "minimize", false, "merge equivalent states")
	cmd.Flags().IntVar(&workLimit, "work-limit", automaton.DefaultDeterminizeWorkLimit, "work limit of the subset construction")
	cmd.Flags().StringVar(&input, "input", "", "string to run before drawing")
	cmd.Flags().BoolVar(&overlay.Current, "current", false, "highlight the current state")
	cmd.Flags().BoolVar(&overlay.Unreachable, "unreachable", false, "grey out unreachable states")
	return cmd
}

func machineTable(m *automaton.Machine[rune, int], input []rune) (*automaton.TransitionTable, error) {
	if m.Rule().IsDeterministic() {
		return runTable(m, input)
	}
	if len(input) > 0 {
		e, err := automaton.NewSubsetEvaluator(m)
		if err != nil {
			return nil, err
		}
		e.Run(input)
	}
	return m.Table()
}

func powersetTable(m *automaton.Machine[rune, int], workLimit int, minimize bool, input []rune, opts ...automaton.Option) (*automaton.TransitionTable, error) {
	p, err := automaton.Determinize(m, workLimit, opts...)
	if err != nil {
		return nil, err
	}
	label := func(id int) string {
		return p.Subset(id).String()
	}
	if minimize {
		return minimalTable(p.Machine, input, label, opts...)
	}

	table, err := runTable(p.Machine, input)
	if err != nil {
		return nil, err
	}
	for id := range table.States {
		table.States[id] = label(id)
	}
	return table, nil
}

// minimalTable draws the minimal machine, each state labelled with the states it merges.
func minimalTable(m *automaton.Machine[rune, int], input []rune, label func(int) string, opts ...automaton.Option) (*automaton.TransitionTable, error) {
	minimal, err := automaton.Minimize(m, opts...)
	if err != nil {
		return nil, err
	}
	table, err := runTable(minimal.Machine, input)
	if err != nil {
		return nil, err
	}
	for id := range table.States {
		parts := make([]string, 0, len(minimal.Class(id)))
		for _, q := range minimal.Class(id) {
			parts = append(parts, label(q))
		}
		table.States[id] = strings.Join(parts, " ")
	}
	return table, nil
}

// runTable runs input through a deterministic machine and returns its table.
func runTable(m *automaton.Machine[rune, int], input []rune) (*automaton.TransitionTable, error) {
	if len(input) > 0 {
		acceptor, err := automaton.NewAcceptor(m)
		if err != nil {
			return nil, err
		}
		acceptor.Run(input)
	}
	return m.Table()
}
