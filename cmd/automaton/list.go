package main

import (
	"fmt"

	"github.com/newcomb/automaton/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the defined automata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range a.file.Automata {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.Name, d.Kind, describe(d))
			}
			return nil
		},
	}
}

func describe(d config.Definition) string {
	switch d.Kind {
	case config.KindRecognition:
		return fmt.Sprintf("threshold=%g", d.Threshold)
	case config.KindTransducer:
		return fmt.Sprintf("alphabet=%q states=%d accepting=%v output=%q", d.Alphabet, d.States, d.Accepting, d.Output)
	default:
		return fmt.Sprintf("alphabet=%q states=%d accepting=%v", d.Alphabet, d.States, d.Accepting)
	}
}
