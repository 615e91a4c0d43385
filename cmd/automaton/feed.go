package main

import (
	"fmt"

	"github.com/newcomb/automaton"
	"github.com/spf13/cobra"
)

func newFeedCmd(a *app) *cobra.Command {
	var (
		rounds int
		seed   string
		states map[string]int
	)
	cmd := &cobra.Command{
		Use:   "feed NAME...",
		Short: "Connect transducers in a feedback loop",
		Long: `Each transducer emits on the previous one's output and the last output starts the next
round. Transducers answer from their current state whether or not the input is accepted. Naming a
transducer twice makes it observe itself.`,
		Example: `  automaton feed M1 M2 --rounds 10
  automaton feed M1 M2 --state M1=1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byName := make(map[string]*automaton.Transducer[rune, int, rune])
			stages := make([]*automaton.Transducer[rune, int, rune], 0, len(args))
			for _, name := range args {
				tr, ok := byName[name]
				if !ok {
					var err error
					if tr, err = a.transducer(name); err != nil {
						return err
					}
					byName[name] = tr
				}
				stages = append(stages, tr)
			}
			for name, q := range states {
				tr, ok := byName[name]
				if !ok {
					return fmt.Errorf("--state %s: not part of the loop", name)
				}
				tr.Machine().SetCurrent(q)
			}

			for i, out := range automaton.Feed(rounds, []rune(seed), stages...) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%q\n", i+1, string(out))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 10, "number of rounds")
	cmd.Flags().StringVar(&seed, "seed", "", "input of the first stage in the first round")
	cmd.Flags().StringToIntVar(&states, "state", nil, "current state of a transducer, as NAME=STATE")
	return cmd
}
