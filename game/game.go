package game

import "fmt"

// Game is the fitness oracle of a finite, well-mixed population.
type Game interface {
	// NbStrategies returns the number of strategies m (> 0).
	NbStrategies() int

	// Fitness returns the fitness of strategy (in [0, m)) in a population of
	// populationSize individuals with composition state (len m, sums to populationSize).
	// Callers validate arguments; implementations may panic on out-of-range input.
	Fitness(strategy, populationSize int, state []int) float64
}

// Describer is implemented by games that can name themselves.
type Describer interface {
	// Type returns a short, stable type tag (e.g. "MatrixGame").
	Type() string

	// String returns a human-readable description.
	String() string
}

// Describe returns g's Type() when it is a Describer and its Go type otherwise.
func Describe(g Game) string {
	if g == nil {
		return "<nil>"
	}
	if d, ok := g.(Describer); ok {
		return d.Type()
	}

	return fmt.Sprintf("%T", g)
}

// Validate checks that g is usable: non-nil with at least one strategy.
func Validate(g Game) error {
	if g == nil {
		return ErrNilGame
	}
	if g.NbStrategies() <= 0 {
		return ErrInvalidStrategyCount
	}

	return nil
}
