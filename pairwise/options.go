package pairwise

import (
	"log/slog"
	"math"
	"runtime"
)

// DefaultEpsilon is the tolerance for clamping a diagonal that rounds
// slightly below zero and for AbsorbingStates.
const DefaultEpsilon = 1e-12

const (
	panicWorkersNegative = "pairwise: WithWorkers: n must be >= 0"
	panicEpsilonInvalid  = "pairwise: WithEpsilon: eps must be finite, non-negative"
)

// Option configures a PairwiseComparison.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	workers int
	logger  *slog.Logger
	eps     float64
}

// WithWorkers bounds the number of goroutines used by the matrix and
// gradient-field builders. 0 selects runtime.GOMAXPROCS(0). Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEpsilon sets the numeric tolerance. Panics when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
		eps:     DefaultEpsilon,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
