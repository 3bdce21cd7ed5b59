package pairwise

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/evodyn/matrix"
)

// CalculateGradientOfSelection returns the expected change of every strategy
// count in one step at state, under selection only (mu = 0):
//
//	g[k] = Σ_{l≠k} T(l→k) − T(k→l)
//
// Each unordered pair contributes one flux w·(σ(beta·Δ) − σ(−beta·Δ)) with
// w = c_k·c_l/(Z(Z−1)) and Δ = f_k − f_l, added to g[k] and subtracted from
// g[l]. For two strategies the entries are therefore exact negatives.
//
// Errors: ErrInvalidBeta, simplex.ErrStateLength, simplex.ErrNegativeCount,
// simplex.ErrStateSum, ErrNonFiniteFitness.
func (pc *PairwiseComparison) CalculateGradientOfSelection(beta float64, state []int) ([]float64, error) {
	const op = "CalculateGradientOfSelection"
	if err := validateBeta(beta); err != nil {
		return nil, pc.fail(op, opGradient, err)
	}
	snap := pc.load()
	if err := snap.space.Validate(state); err != nil {
		return nil, pc.fail(op, opGradient, err)
	}

	m := snap.nbStrategies()
	grad := make([]float64, m)
	fit := make([]float64, m)
	if err := snap.gradient(beta, state, fit, grad); err != nil {
		return nil, pc.fail(op, opGradient, err)
	}
	gradientTotal.Inc()

	return grad, nil
}

// CalculateGradients returns the gradient of selection at every state as an
// nb_states × m matrix; row i is the gradient at the state with index i.
// Rows are computed in parallel like CalculateTransitionMatrix.
//
// Errors: ErrInvalidBeta, ErrNonFiniteFitness.
func (pc *PairwiseComparison) CalculateGradients(beta float64) (*matrix.Dense, error) {
	const op = "CalculateGradients"
	if err := validateBeta(beta); err != nil {
		return nil, pc.fail(op, opGradients, err)
	}
	snap := pc.load()
	n, m := snap.space.NbStates(), snap.nbStrategies()
	out, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, pc.fail(op, opGradients, err)
	}

	var g errgroup.Group
	g.SetLimit(pc.opts.workers)
	for _, r := range splitRows(n, pc.opts.workers) {
		r := r
		g.Go(func() error {
			state := make([]int, m)
			fit := make([]float64, m)
			grad := make([]float64, m)
			var err error
			for idx := r.lo; idx < r.hi; idx++ {
				if state, err = snap.space.State(idx, state); err != nil {
					return err
				}
				if err = snap.gradient(beta, state, fit, grad); err != nil {
					return fmt.Errorf("state %v: %w", state, err)
				}
				// distinct rows: no two goroutines write the same region
				if err = out.SetRow(idx, grad); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, pc.fail(op, opGradients, err)
	}
	gradientTotal.Add(float64(n))
	pc.opts.logger.Debug("gradients_done", "nb_states", n, "nb_strategies", m)

	return out, nil
}

// gradient writes the selection gradient at state into grad, using fit as scratch.
func (s *snapshot) gradient(beta float64, state []int, fit, grad []float64) error {
	for k := range grad {
		grad[k] = 0
	}
	z := s.populationSize()
	if z < 2 || len(grad) < 2 {
		return nil
	}
	if err := s.fitnessVector(state, fit); err != nil {
		return err
	}

	norm := float64(z) * float64(z-1)
	var w, flux float64
	for k := 0; k < len(grad); k++ {
		if state[k] == 0 {
			continue
		}
		for l := k + 1; l < len(grad); l++ {
			if state[l] == 0 {
				continue
			}
			w = float64(state[k]) * float64(state[l]) / norm
			flux = w * (Fermi(beta, fit[l], fit[k]) - Fermi(beta, fit[k], fit[l]))
			grad[k] += flux
			grad[l] -= flux
		}
	}

	return nil
}
