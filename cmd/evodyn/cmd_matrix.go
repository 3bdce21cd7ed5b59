package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/evodyn/matrix"
	"github.com/katalvlaran/evodyn/pairwise"
)

type entryOutput struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
}

type matrixOutput struct {
	Game               string        `json:"game"`
	PopulationSize     int           `json:"population_size"`
	NbStrategies       int           `json:"nb_strategies"`
	NbStates           int           `json:"nb_states"`
	Beta               float64       `json:"beta"`
	Mu                 float64       `json:"mu"`
	NNZ                int           `json:"nnz"`
	MaxRowSumDeviation float64       `json:"max_row_sum_deviation"`
	AbsorbingStates    []int         `json:"absorbing_states"`
	Entries            []entryOutput `json:"entries,omitempty"`
}

func (a *app) matrixCmd() *cobra.Command {
	var (
		gamePath string
		entries  bool
	)
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Assemble the transition matrix and print a summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, gf, err := loadGame(gamePath)
			if err != nil {
				return err
			}
			pc, err := a.newCalculator(g)
			if err != nil {
				return err
			}
			m, err := pc.CalculateTransitionMatrix(a.cfg.Beta, a.cfg.Mu)
			if err != nil {
				return err
			}
			dev, _, err := matrix.MaxRowSumDeviation(m)
			if err != nil {
				return err
			}
			absorbing := pairwise.AbsorbingStates(m, pairwise.DefaultEpsilon)
			if absorbing == nil {
				absorbing = []int{}
			}
			out := matrixOutput{
				Game:               gf.Name,
				PopulationSize:     pc.PopulationSize(),
				NbStrategies:       pc.NbStrategies(),
				NbStates:           pc.NbStates(),
				Beta:               a.cfg.Beta,
				Mu:                 a.cfg.Mu,
				NNZ:                m.NNZ(),
				MaxRowSumDeviation: dev,
				AbsorbingStates:    absorbing,
			}
			if entries {
				out.Entries = make([]entryOutput, 0, m.NNZ())
				m.Do(func(i, j int, v float64) {
					out.Entries = append(out.Entries, entryOutput{Row: i, Col: j, Value: v})
				})
			}
			a.logger.Info("transition matrix assembled", "game", gf.Name, "nb_states", out.NbStates, "nnz", out.NNZ)

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&gamePath, "game", "", "YAML game file")
	cmd.Flags().BoolVar(&entries, "entries", false, "include every stored entry")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}
