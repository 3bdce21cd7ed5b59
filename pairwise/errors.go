package pairwise

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPopulationSize indicates a population size <= 0.
	ErrInvalidPopulationSize = errors.New("pairwise: population size must be > 0")

	// ErrInvalidStrategyCount indicates a game reporting no strategies.
	ErrInvalidStrategyCount = errors.New("pairwise: number of strategies must be > 0")

	// ErrNilGame indicates a nil game at construction or update.
	ErrNilGame = errors.New("pairwise: nil game")

	// ErrInvalidBeta indicates a negative or non-finite selection intensity.
	ErrInvalidBeta = errors.New("pairwise: beta must be finite and >= 0")

	// ErrInvalidMutationRate indicates mu outside [0, 1].
	ErrInvalidMutationRate = errors.New("pairwise: mu must lie in [0, 1]")

	// ErrInvalidStrategy indicates a strategy index outside [0, m).
	ErrInvalidStrategy = errors.New("pairwise: strategy index out of range")

	// ErrSameStrategy indicates a move whose decreasing and increasing strategies coincide.
	ErrSameStrategy = errors.New("pairwise: decreasing and increasing strategies must differ")

	// ErrNonFiniteFitness indicates the game returned NaN or ±Inf.
	ErrNonFiniteFitness = errors.New("pairwise: game returned a non-finite fitness")
)

// pairwiseErrorf wraps err with the public operation that failed.
func pairwiseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
