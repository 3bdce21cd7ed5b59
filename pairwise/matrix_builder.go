package pairwise

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/evodyn/matrix"
)

// chunksPerWorker oversubscribes the pool so uneven rows (states near the
// simplex center have more moves) still balance.
const chunksPerWorker = 4

// CalculateTransitionMatrix returns the nb_states × nb_states row-stochastic
// transition matrix of the process.
//
// Implementation:
//   - Stage 1: validate beta and mu, pin the current snapshot.
//   - Stage 2: split [0, nb_states) into contiguous chunks; a bounded errgroup
//     computes each chunk into its own triplet list, one row at a time: decode
//     the state, evaluate all m fitnesses once, emit every non-zero move and
//     the diagonal 1 − Σ off-diagonal.
//   - Stage 3: concatenate the lists in chunk order and compress to CSR.
//
// The diagonal is always stored; zero off-diagonal moves are not. A diagonal
// that rounds below zero by at most the configured epsilon is clamped to 0.
//
// Errors: ErrInvalidBeta, ErrInvalidMutationRate, ErrNonFiniteFitness,
// matrix.ErrNotStochastic if a row's off-diagonal mass exceeds 1 + eps.
//
// Complexity: O(nb_states · m²) transition terms, O(nb_states · m) fitness
// calls, O(nb_states · m²) memory for the result.
func (pc *PairwiseComparison) CalculateTransitionMatrix(beta, mu float64) (*matrix.Sparse, error) {
	const op = "CalculateTransitionMatrix"
	if err := validateBeta(beta); err != nil {
		return nil, pc.fail(op, opTransitionMatrix, err)
	}
	if err := validateMu(mu); err != nil {
		return nil, pc.fail(op, opTransitionMatrix, err)
	}

	snap := pc.load()
	n := snap.space.NbStates()
	start := time.Now()
	logger := pc.opts.logger.With(
		"nb_states", n,
		"nb_strategies", snap.nbStrategies(),
		"population_size", snap.populationSize(),
	)
	logger.Debug("transition_matrix_start", "beta", beta, "mu", mu, "workers", pc.opts.workers)

	chunks := splitRows(n, pc.opts.workers)
	parts := make([][]matrix.Triplet, len(chunks))
	var g errgroup.Group
	g.SetLimit(pc.opts.workers)
	for c, r := range chunks {
		c, r := c, r
		g.Go(func() error {
			trip, err := snap.rows(r.lo, r.hi, beta, mu, pc.opts.eps)
			parts[c] = trip

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, pc.fail(op, opTransitionMatrix, err)
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	all := make([]matrix.Triplet, 0, total)
	for _, p := range parts {
		all = append(all, p...)
	}
	out, err := matrix.NewSparse(n, n, all)
	if err != nil {
		return nil, pc.fail(op, opTransitionMatrix, err)
	}

	elapsed := time.Since(start)
	transitionMatrixDuration.Observe(elapsed.Seconds())
	transitionMatrixStates.Observe(float64(n))
	logger.Debug("transition_matrix_done", "nnz", out.NNZ(), "duration", elapsed)

	return out, nil
}

// rowRange is a half-open range of state indices.
type rowRange struct{ lo, hi int }

// splitRows cuts [0, n) into at most workers·chunksPerWorker contiguous ranges.
func splitRows(n, workers int) []rowRange {
	if workers < 1 {
		workers = 1
	}
	size := n / (workers * chunksPerWorker)
	if size < 1 {
		size = 1
	}
	out := make([]rowRange, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		out = append(out, rowRange{lo: lo, hi: min(lo+size, n)})
	}

	return out
}

// rows emits the triplets of rows [lo, hi). It owns every buffer it touches.
func (s *snapshot) rows(lo, hi int, beta, mu, eps float64) ([]matrix.Triplet, error) {
	m := s.nbStrategies()
	z := s.populationSize()
	state := make([]int, m)
	fit := make([]float64, m)
	out := make([]matrix.Triplet, 0, (hi-lo)*(1+m*(m-1)))

	var err error
	var j int
	var p, off float64
	for idx := lo; idx < hi; idx++ {
		if state, err = s.space.State(idx, state); err != nil {
			return nil, err
		}
		off = 0
		if m > 1 {
			if err = s.fitnessVector(state, fit); err != nil {
				return nil, fmt.Errorf("state %v: %w", state, err)
			}
		}
		for d := 0; d < m; d++ {
			if state[d] == 0 {
				continue
			}
			for i := 0; i < m; i++ {
				if i == d {
					continue
				}
				p = transition(state[d], state[i], z, m, fit[d], fit[i], beta, mu)
				if p == 0 {
					continue
				}
				state[d]--
				state[i]++
				j, err = s.space.Index(state)
				state[d]++
				state[i]--
				if err != nil {
					return nil, err
				}
				out = append(out, matrix.Triplet{Row: idx, Col: j, Value: p})
				off += p
			}
		}
		diag := 1 - off
		if diag < 0 {
			if diag < -eps {
				return nil, fmt.Errorf("row %d off-diagonal mass %g: %w", idx, off, matrix.ErrNotStochastic)
			}
			diag = 0
		}
		out = append(out, matrix.Triplet{Row: idx, Col: idx, Value: diag})
	}

	return out, nil
}
