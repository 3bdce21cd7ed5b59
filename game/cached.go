package game

import (
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/evodyn/simplex"
)

// Cached memoizes an expensive Game for one population size.
//
// The first request for a state computes the fitness of every strategy in
// that state and stores the vector under the state's index; later requests
// for any strategy in that state are lookups. Concurrent first requests for
// the same state share a single computation.
//
// Requests for another population size, or with a state outside the space,
// go straight to the wrapped game.
type Cached struct {
	inner Game
	space simplex.Space

	mu    sync.RWMutex
	cache map[int][]float64
	group singleflight.Group
}

var (
	_ Game      = (*Cached)(nil)
	_ Describer = (*Cached)(nil)
)

// NewCached wraps g with a per-state cache for populations of populationSize.
//
// Errors: ErrNilGame, ErrInvalidStrategyCount, simplex errors for an invalid
// population size or an overflowing state space.
func NewCached(g Game, populationSize int) (*Cached, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}
	sp, err := simplex.NewSpace(populationSize, g.NbStrategies())
	if err != nil {
		return nil, fmt.Errorf("NewCached: %w", err)
	}

	return &Cached{inner: g, space: sp, cache: make(map[int][]float64)}, nil
}

// NbStrategies returns the wrapped game's strategy count.
func (c *Cached) NbStrategies() int { return c.inner.NbStrategies() }

// Fitness returns the (possibly memoized) fitness of strategy.
func (c *Cached) Fitness(strategy, populationSize int, state []int) float64 {
	if populationSize != c.space.PopulationSize() {
		return c.inner.Fitness(strategy, populationSize, state)
	}
	idx, err := c.space.Index(state)
	if err != nil {
		return c.inner.Fitness(strategy, populationSize, state)
	}

	return c.vector(idx, state)[strategy]
}

// vector returns the fitness vector of the state with index idx.
func (c *Cached) vector(idx int, state []int) []float64 {
	c.mu.RLock()
	v, ok := c.cache[idx]
	c.mu.RUnlock()
	if ok {
		return v
	}

	res, _, _ := c.group.Do(strconv.Itoa(idx), func() (any, error) {
		c.mu.RLock()
		v, ok := c.cache[idx]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}
		// private copy: the caller owns state and may reuse it once we return
		st := append([]int(nil), state...)
		z := c.space.PopulationSize()
		v = make([]float64, len(st))
		for s := range v {
			v[s] = c.inner.Fitness(s, z, st)
		}
		c.mu.Lock()
		c.cache[idx] = v
		c.mu.Unlock()

		return v, nil
	})

	return res.([]float64)
}

// Len returns the number of cached states.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}

// Reset drops every cached vector.
func (c *Cached) Reset() {
	c.mu.Lock()
	c.cache = make(map[int][]float64)
	c.mu.Unlock()
}

// PopulationSize returns the population size the cache is keyed for.
func (c *Cached) PopulationSize() int { return c.space.PopulationSize() }

// Type returns "Cached(<inner>)".
func (c *Cached) Type() string { return "Cached(" + Describe(c.inner) + ")" }

// String describes the wrapped game.
func (c *Cached) String() string {
	if d, ok := c.inner.(Describer); ok {
		return "cached " + d.String()
	}

	return c.Type()
}
