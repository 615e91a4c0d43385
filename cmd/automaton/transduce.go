package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTransduceCmd(a *app) *cobra.Command {
	var beforeReset bool
	cmd := &cobra.Command{
		Use:   "transduce NAME [INPUT...]",
		Short: "Translate accepted strings with a transducer",
		Long: `Runs each input through a transducer. Rejected input produces no output. Accepted input
is translated after the machine has been reset to its initial state; --before-reset computes the
output from the final state instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.transducer(args[0])
			if err != nil {
				return err
			}
			m := tr.Machine()

			for _, input := range args[1:] {
				runes := []rune(input)
				var out []rune
				if beforeReset {
					q := tr.Acceptor().Run(runes)
					if m.IsAccepting(q) {
						out = tr.Emit(runes)
					}
					m.Reset()
				} else {
					out = tr.Transduce(runes)
				}

				if out == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", input, verdict(false))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q\t%q\n", input, string(out))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&beforeReset, "before-reset", false, "compute output from the final state, before the reset")
	return cmd
}
