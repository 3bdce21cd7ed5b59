package pairwise

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/evodyn/game"
	"github.com/katalvlaran/evodyn/simplex"
)

// snapshot is the immutable configuration a single computation runs on.
type snapshot struct {
	space simplex.Space
	game  game.Game
}

func (s *snapshot) populationSize() int { return s.space.PopulationSize() }
func (s *snapshot) nbStrategies() int   { return s.space.NbStrategies() }

// PairwiseComparison evaluates the Pairwise Comparison process for one
// population size and one game. It is safe for concurrent use, including
// concurrent updates.
type PairwiseComparison struct {
	cur  atomic.Pointer[snapshot]
	upMu sync.Mutex // serializes writers; readers only Load
	opts Options
}

// New validates (populationSize, g) and returns a ready calculator.
//
// Errors: ErrInvalidPopulationSize, ErrNilGame, ErrInvalidStrategyCount,
// simplex.ErrStateSpaceOverflow when the state count does not fit in an int.
func New(populationSize int, g game.Game, opts ...Option) (*PairwiseComparison, error) {
	snap, err := newSnapshot(populationSize, g)
	if err != nil {
		return nil, pairwiseErrorf("New", err)
	}
	pc := &PairwiseComparison{opts: gatherOptions(opts...)}
	pc.cur.Store(snap)

	return pc, nil
}

// newSnapshot validates and derives every quantity the kernels need.
func newSnapshot(populationSize int, g game.Game) (*snapshot, error) {
	if populationSize <= 0 {
		return nil, ErrInvalidPopulationSize
	}
	if err := game.Validate(g); err != nil {
		if errors.Is(err, game.ErrNilGame) {
			return nil, ErrNilGame
		}

		return nil, ErrInvalidStrategyCount
	}
	sp, err := simplex.NewSpace(populationSize, g.NbStrategies())
	if err != nil {
		return nil, err
	}

	return &snapshot{space: sp, game: g}, nil
}

func (pc *PairwiseComparison) load() *snapshot { return pc.cur.Load() }

// PopulationSize returns Z.
func (pc *PairwiseComparison) PopulationSize() int { return pc.load().populationSize() }

// NbStrategies returns the game's strategy count m.
func (pc *PairwiseComparison) NbStrategies() int { return pc.load().nbStrategies() }

// NbStates returns C(Z+m−1, m−1).
func (pc *PairwiseComparison) NbStates() int { return pc.load().space.NbStates() }

// Game returns the current game.
func (pc *PairwiseComparison) Game() game.Game { return pc.load().game }

// Space returns the current state space.
func (pc *PairwiseComparison) Space() simplex.Space { return pc.load().space }

// UpdatePopulationSize replaces Z and recomputes the state space.
// On error the previous configuration stays in place.
func (pc *PairwiseComparison) UpdatePopulationSize(populationSize int) error {
	pc.upMu.Lock()
	defer pc.upMu.Unlock()

	snap, err := newSnapshot(populationSize, pc.load().game)
	if err != nil {
		return pairwiseErrorf("UpdatePopulationSize", err)
	}
	pc.cur.Store(snap)

	return nil
}

// UpdateGame replaces the game and recomputes m and the state space.
// On error the previous configuration stays in place.
func (pc *PairwiseComparison) UpdateGame(g game.Game) error {
	pc.upMu.Lock()
	defer pc.upMu.Unlock()

	snap, err := newSnapshot(pc.load().populationSize(), g)
	if err != nil {
		return pairwiseErrorf("UpdateGame", err)
	}
	pc.cur.Store(snap)

	return nil
}

// StateFromIndex returns a fresh copy of the state with the given index.
func (pc *PairwiseComparison) StateFromIndex(index int) ([]int, error) {
	return pc.load().space.State(index, nil)
}

// IndexFromState returns the index of state.
func (pc *PairwiseComparison) IndexFromState(state []int) (int, error) {
	return pc.load().space.Index(state)
}

// Fitness returns the game's fitness of strategy in state.
//
// Errors: ErrInvalidStrategy, simplex state errors, ErrNonFiniteFitness.
func (pc *PairwiseComparison) Fitness(strategy int, state []int) (float64, error) {
	const op = "Fitness"
	snap := pc.load()
	if err := validateStrategy(strategy, snap.nbStrategies()); err != nil {
		return 0, pairwiseErrorf(op, err)
	}
	if err := snap.space.Validate(state); err != nil {
		return 0, pairwiseErrorf(op, err)
	}
	f := snap.game.Fitness(strategy, snap.populationSize(), state)
	if !isFinite(f) {
		return 0, pairwiseErrorf(op, ErrNonFiniteFitness)
	}

	return f, nil
}

// fitnessVector fills dst[s] with the fitness of every strategy in state.
func (s *snapshot) fitnessVector(state []int, dst []float64) error {
	z := s.populationSize()
	for k := range dst {
		dst[k] = s.game.Fitness(k, z, state)
		if !isFinite(dst[k]) {
			return ErrNonFiniteFitness
		}
	}

	return nil
}
