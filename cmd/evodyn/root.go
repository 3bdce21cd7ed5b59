package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evodyn/game"
	"github.com/katalvlaran/evodyn/pairwise"
)

// app carries the resolved configuration between cobra hooks and commands.
type app struct {
	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "evodyn",
		Short:         "Exact pairwise-comparison dynamics in finite populations",
		SilenceUsage:  true,
	}
	pf := root.PersistentFlags()
	pf.IntVar(&a.cfg.PopulationSize, "population-size", 10, "population size Z (env EVODYN_POPULATION_SIZE)")
	pf.Float64Var(&a.cfg.Beta, "beta", 1, "selection intensity (env EVODYN_BETA)")
	pf.Float64Var(&a.cfg.Mu, "mu", 0, "mutation rate in [0,1] (env EVODYN_MU)")
	pf.IntVar(&a.cfg.Workers, "workers", 0, "worker goroutines, 0 = GOMAXPROCS (env EVODYN_WORKERS)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", "info", "debug|info|warn|error (env EVODYN_LOG_LEVEL)")

	root.PersistentPreRunE = a.preRun
	root.AddCommand(a.statesCmd(), a.matrixCmd(), a.gradientCmd())

	return root
}

// preRun layers flags over the environment, validates, and builds the logger.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	fromEnv, err := loadEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("population-size") {
		a.cfg.PopulationSize = fromEnv.PopulationSize
	}
	if !flags.Changed("beta") {
		a.cfg.Beta = fromEnv.Beta
	}
	if !flags.Changed("mu") {
		a.cfg.Mu = fromEnv.Mu
	}
	if !flags.Changed("workers") {
		a.cfg.Workers = fromEnv.Workers
	}
	if !flags.Changed("log-level") {
		a.cfg.LogLevel = fromEnv.LogLevel
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.slogLevel()}))

	return nil
}

// newCalculator builds a PairwiseComparison for g from the resolved config.
func (a *app) newCalculator(g game.Game) (*pairwise.PairwiseComparison, error) {
	return pairwise.New(a.cfg.PopulationSize, g,
		pairwise.WithWorkers(a.cfg.Workers),
		pairwise.WithLogger(a.logger),
	)
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
