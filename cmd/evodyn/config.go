package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evodyn/game"
)

// Config holds the run parameters shared by all commands.
type Config struct {
	PopulationSize int     `env:"EVODYN_POPULATION_SIZE" envDefault:"10" validate:"gte=1"`
	Beta           float64 `env:"EVODYN_BETA" envDefault:"1" validate:"gte=0"`
	Mu             float64 `env:"EVODYN_MU" envDefault:"0" validate:"gte=0,lte=1"`
	Workers        int     `env:"EVODYN_WORKERS" envDefault:"0" validate:"gte=0"`
	LogLevel       string  `env:"EVODYN_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// GameFile is the YAML description of a normal-form game.
type GameFile struct {
	Name       string      `yaml:"name"`
	Strategies []string    `yaml:"strategies" validate:"omitempty,dive,required"`
	Payoffs    [][]float64 `yaml:"payoffs" validate:"required,min=1,dive,min=1"`
}

var (
	errStrategyNames = errors.New("strategies: one name per payoff row")

	validate = validator.New()
)

// loadEnv reads Config from the environment, applying envDefault values.
func loadEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// slogLevel maps LogLevel to a slog.Level.
func (c Config) slogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// loadGame parses and validates a YAML game file.
func loadGame(path string) (*game.MatrixGame, *GameFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read game: %w", err)
	}
	var gf GameFile
	if err = yaml.Unmarshal(raw, &gf); err != nil {
		return nil, nil, fmt.Errorf("parse game %s: %w", path, err)
	}
	if err = validate.Struct(gf); err != nil {
		return nil, nil, fmt.Errorf("game %s: %w", path, err)
	}
	if len(gf.Strategies) > 0 && len(gf.Strategies) != len(gf.Payoffs) {
		return nil, nil, fmt.Errorf("game %s: %w", path, errStrategyNames)
	}
	g, err := game.NewMatrixGame(gf.Payoffs)
	if err != nil {
		return nil, nil, fmt.Errorf("game %s: %w", path, err)
	}

	return g.WithNames(gf.Strategies...), &gf, nil
}
