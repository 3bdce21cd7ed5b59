package game

// FitnessFunc computes the fitness of strategy in a population of
// populationSize individuals with composition state.
type FitnessFunc func(strategy, populationSize int, state []int) float64

// Func adapts a plain FitnessFunc to the Game interface.
//
// It is the seam for oracles implemented elsewhere (another process, an
// embedded interpreter, a lookup table): wrap the call in a FitnessFunc and
// the kernels treat it like any other game. Fn must honor the Game contract.
type Func struct {
	name       string
	strategies int
	fn         FitnessFunc
}

var (
	_ Game      = (*Func)(nil)
	_ Describer = (*Func)(nil)
)

// NewFunc returns a Game with nbStrategies strategies backed by fn.
// name is only used by String(); pass "" for a generic label.
func NewFunc(name string, nbStrategies int, fn FitnessFunc) (*Func, error) {
	if nbStrategies <= 0 {
		return nil, ErrInvalidStrategyCount
	}
	if fn == nil {
		return nil, ErrNilFitnessFunc
	}
	if name == "" {
		name = "func"
	}

	return &Func{name: name, strategies: nbStrategies, fn: fn}, nil
}

// NbStrategies returns the number of strategies.
func (f *Func) NbStrategies() int { return f.strategies }

// Fitness forwards to the wrapped function.
func (f *Func) Fitness(strategy, populationSize int, state []int) float64 {
	return f.fn(strategy, populationSize, state)
}

// Type returns "Func".
func (f *Func) Type() string { return "Func" }

// String returns the name given at construction.
func (f *Func) String() string { return f.name }
