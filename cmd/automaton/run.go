package main

import (
	"fmt"
	"io"

	"github.com/newcomb/automaton"
	"github.com/spf13/cobra"
)

func verdict(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}

func newRunCmd(a *app) *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:   "run NAME [INPUT...]",
		Short: "Evaluate strings with a deterministic automaton",
		Long: `Extends the transition rule of a deterministic automaton over each input and prints the
final state. Symbols take effect from the last to the first. Every input starts from the initial
state unless --from is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}
			acceptor, err := automaton.NewAcceptor(m)
			if err != nil {
				return err
			}
			return runInputs(cmd.OutOrStdout(), args[1:], func(input []rune) (string, bool) {
				m.Reset()
				if cmd.Flags().Changed("from") {
					m.SetCurrent(from)
				}
				q := acceptor.Run(input)
				return fmt.Sprint(q), m.IsAccepting(q)
			})
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "state to start from")
	return cmd
}

func newSubsetCmd(a *app) *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:   "subset NAME [INPUT...]",
		Short: "Evaluate strings by recursive subset union",
		Long: `Extends the rule of a finite automaton to strings by subset union and prints the set of
states collected. A string is accepted when the set meets the accepting states.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}
			e, err := automaton.NewSubsetEvaluator(m)
			if err != nil {
				return err
			}
			return runInputs(cmd.OutOrStdout(), args[1:], func(input []rune) (string, bool) {
				m.Reset()
				if cmd.Flags().Changed("from") {
					m.SetCurrent(from)
				}
				set := e.Run(input)
				return set.String(), m.Accepting()
			})
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "state to start from")
	return cmd
}

// runInputs evaluates each input and prints one line per input.
func runInputs(w io.Writer, inputs []string, eval func(input []rune) (string, bool)) error {
	for _, input := range inputs {
		result, accepted := eval([]rune(input))
		if _, err := fmt.Fprintf(w, "%q\t%s\t%s\n", input, result, verdict(accepted)); err != nil {
			return err
		}
	}
	return nil
}
