package game

import "errors"

var (
	// ErrNilGame indicates a nil Game where one is required.
	ErrNilGame = errors.New("game: nil game")

	// ErrInvalidStrategyCount indicates a game with no strategies.
	ErrInvalidStrategyCount = errors.New("game: number of strategies must be > 0")

	// ErrNilFitnessFunc indicates Func without a fitness function.
	ErrNilFitnessFunc = errors.New("game: nil fitness function")

	// ErrNonSquarePayoffs indicates a payoff matrix that is not m×m.
	ErrNonSquarePayoffs = errors.New("game: payoff matrix must be square")

	// ErrNonFinitePayoff indicates a NaN or ±Inf payoff.
	ErrNonFinitePayoff = errors.New("game: payoff must be finite")
)
