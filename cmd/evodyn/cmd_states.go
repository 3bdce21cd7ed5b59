package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/evodyn/simplex"
)

type statesOutput struct {
	PopulationSize int     `json:"population_size"`
	NbStrategies   int     `json:"nb_strategies"`
	NbStates       int     `json:"nb_states"`
	States         [][]int `json:"states,omitempty"`
}

func (a *app) statesCmd() *cobra.Command {
	var (
		strategies int
		list       bool
	)
	cmd := &cobra.Command{
		Use:   "states",
		Short: "Count (and optionally list) the population compositions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sp, err := simplex.NewSpace(a.cfg.PopulationSize, strategies)
			if err != nil {
				return err
			}
			out := statesOutput{
				PopulationSize: sp.PopulationSize(),
				NbStrategies:   sp.NbStrategies(),
				NbStates:       sp.NbStates(),
			}
			if list {
				out.States = make([][]int, 0, sp.NbStates())
				state, err := sp.State(0, nil)
				if err != nil {
					return err
				}
				for {
					out.States = append(out.States, append([]int(nil), state...))
					if !sp.Next(state) {
						break
					}
				}
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&strategies, "strategies", 2, "number of strategies m")
	cmd.Flags().BoolVar(&list, "list", false, "list every state in index order")

	return cmd
}
