package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/newcomb/automaton"
	"github.com/newcomb/automaton/internal/config"
	"github.com/spf13/cobra"
)

func newRecognizeCmd(a *app) *cobra.Command {
	var (
		count  int
		seed   uint64
		lo, hi float64
	)
	cmd := &cobra.Command{
		Use:   "recognize NAME [STIMULUS...]",
		Short: "Drive a two-layer recognition/abstraction automaton",
		Long: `Feeds real-valued stimuli one at a time into a two-layer automaton and prints every
recognition cycle. Stimuli are taken from the arguments, followed by --random values drawn
uniformly from [--min, --max) with a seeded generator.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.lookup(args[0], config.KindRecognition)
			if err != nil {
				return err
			}
			stimuli := make([]float64, 0, len(args)-1+count)
			for _, arg := range args[1:] {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("stimulus %q: %w", arg, err)
				}
				stimuli = append(stimuli, v)
			}
			if hi < lo {
				return fmt.Errorf("--max %g is below --min %g", hi, lo)
			}
			rng := rand.New(rand.NewPCG(seed, seed))
			for i := 0; i < count; i++ {
				stimuli = append(stimuli, lo+rng.Float64()*(hi-lo))
			}

			out := cmd.OutOrStdout()
			l := d.TwoLayer()
			step := 0
			l.OnCycle = func(c automaton.Cycle) {
				fmt.Fprintf(out, "cycle\tstep=%d\trecognition=%g\tabstracted=%t\n", step, c.Peak.Recognition, c.Abstracted)
			}
			m, err := automaton.MakeRecognitionAbstraction(l, a.options(args[0])...)
			if err != nil {
				return err
			}

			for i, s := range stimuli {
				step = i + 1
				m.Step(s)
			}
			q, _ := m.Current().Element()
			fmt.Fprintf(out, "state\trecognition=%g\tabstraction=%d\n", q.Recognition, q.Abstraction)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "random", 0, "number of random stimuli to append")
	cmd.Flags().Uint64Var(&seed, "rand-seed", 1, "seed of the random stimuli")
	cmd.Flags().Float64Var(&lo, "min", -1, "lower bound of random stimuli")
	cmd.Flags().Float64Var(&hi, "max", 1.5, "upper bound of random stimuli")
	return cmd
}
