package main

import (
	"github.com/spf13/cobra"
)

type gradientOutput struct {
	Game     string    `json:"game"`
	Beta     float64   `json:"beta"`
	State    []int     `json:"state"`
	Gradient []float64 `json:"gradient"`
}

type fieldOutput struct {
	Game      string      `json:"game"`
	Beta      float64     `json:"beta"`
	States    [][]int     `json:"states"`
	Gradients [][]float64 `json:"gradients"`
}

func (a *app) gradientCmd() *cobra.Command {
	var (
		gamePath string
		state    []int
	)
	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Gradient of selection at one state, or at every state without --state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, gf, err := loadGame(gamePath)
			if err != nil {
				return err
			}
			pc, err := a.newCalculator(g)
			if err != nil {
				return err
			}

			if len(state) > 0 {
				grad, err := pc.CalculateGradientOfSelection(a.cfg.Beta, state)
				if err != nil {
					return err
				}

				return writeJSON(cmd.OutOrStdout(), gradientOutput{
					Game: gf.Name, Beta: a.cfg.Beta, State: state, Gradient: grad,
				})
			}

			field, err := pc.CalculateGradients(a.cfg.Beta)
			if err != nil {
				return err
			}
			out := fieldOutput{
				Game:      gf.Name,
				Beta:      a.cfg.Beta,
				States:    make([][]int, field.Rows()),
				Gradients: make([][]float64, field.Rows()),
			}
			for i := range out.States {
				if out.States[i], err = pc.StateFromIndex(i); err != nil {
					return err
				}
				if out.Gradients[i], err = field.Row(i); err != nil {
					return err
				}
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&gamePath, "game", "", "YAML game file")
	cmd.Flags().IntSliceVar(&state, "state", nil, "composition, e.g. 5,5")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}
