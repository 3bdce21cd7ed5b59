package simplex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPopulationSize indicates population size <= 0.
	ErrInvalidPopulationSize = errors.New("simplex: population size must be > 0")

	// ErrInvalidStrategyCount indicates number of strategies <= 0.
	ErrInvalidStrategyCount = errors.New("simplex: number of strategies must be > 0")

	// ErrInvalidBinomial indicates a negative argument to Binomial.
	ErrInvalidBinomial = errors.New("simplex: binomial arguments must be non-negative")

	// ErrStateSpaceOverflow indicates the number of states does not fit in an int.
	ErrStateSpaceOverflow = errors.New("simplex: state space too large")

	// ErrIndexOutOfRange indicates a state index outside [0, nb_states).
	ErrIndexOutOfRange = errors.New("simplex: state index out of range")

	// ErrStateLength indicates a state vector whose length differs from the strategy count.
	ErrStateLength = errors.New("simplex: state length does not match number of strategies")

	// ErrNegativeCount indicates a state vector with a negative entry.
	ErrNegativeCount = errors.New("simplex: state has a negative count")

	// ErrStateSum indicates a state vector whose entries do not sum to the population size.
	ErrStateSum = errors.New("simplex: state does not sum to population size")

	// ErrNilRNG indicates Sample was called without a random source.
	ErrNilRNG = errors.New("simplex: nil random source")
)

// simplexErrorf tags err with the operation that produced it.
func simplexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
