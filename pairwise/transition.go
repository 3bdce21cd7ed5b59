package pairwise

// TransitionProbability returns the probability that one elementary step
// moves one individual from strategy decreasing to strategy increasing in
// state:
//
//	c_d/Z · [ (1−mu)·c_i/(Z−1)·Fermi(beta, f_d, f_i) + mu/(m−1) ]
//
// It is 0 when state has no individual of strategy decreasing (the game is
// not consulted then). The selection part is 0 when Z == 1.
//
// Errors: ErrInvalidBeta, ErrInvalidMutationRate, ErrInvalidStrategy,
// ErrSameStrategy, simplex state errors, ErrNonFiniteFitness.
func (pc *PairwiseComparison) TransitionProbability(decreasing, increasing int, beta, mu float64, state []int) (float64, error) {
	const op = "TransitionProbability"
	snap := pc.load()

	if err := validateBeta(beta); err != nil {
		return 0, pc.fail(op, opTransition, err)
	}
	if err := validateMu(mu); err != nil {
		return 0, pc.fail(op, opTransition, err)
	}
	if err := validateMove(decreasing, increasing, snap.nbStrategies()); err != nil {
		return 0, pc.fail(op, opTransition, err)
	}
	if err := snap.space.Validate(state); err != nil {
		return 0, pc.fail(op, opTransition, err)
	}
	if state[decreasing] == 0 {
		return 0, nil
	}

	z := snap.populationSize()
	fd := snap.game.Fitness(decreasing, z, state)
	fi := snap.game.Fitness(increasing, z, state)
	if !isFinite(fd) || !isFinite(fi) {
		return 0, pc.fail(op, opTransition, ErrNonFiniteFitness)
	}

	return transition(state[decreasing], state[increasing], z, snap.nbStrategies(), fd, fi, beta, mu), nil
}

// transition is the unchecked kernel shared by the matrix builder.
// Requires 0 <= cd, ci and cd+ci <= z, m >= 2.
func transition(cd, ci, z, m int, fd, fi, beta, mu float64) float64 {
	if cd == 0 {
		return 0
	}
	var sel float64
	if z > 1 && ci > 0 {
		sel = float64(ci) / float64(z-1) * Fermi(beta, fd, fi)
	}
	p := (1-mu)*sel + mu/float64(m-1)

	return float64(cd) / float64(z) * p
}

// fail records the failure under label and wraps err with op.
func (pc *PairwiseComparison) fail(op, label string, err error) error {
	calculationErrors.WithLabelValues(label).Inc()

	return pairwiseErrorf(op, err)
}
