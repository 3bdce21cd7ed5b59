package pairwise

import "math"

// validateBeta accepts finite beta >= 0.
func validateBeta(beta float64) error {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta < 0 {
		return ErrInvalidBeta
	}

	return nil
}

// validateMu accepts mu in [0, 1]; NaN fails both comparisons and is rejected.
func validateMu(mu float64) error {
	if !(mu >= 0 && mu <= 1) {
		return ErrInvalidMutationRate
	}

	return nil
}

// validateStrategy accepts s in [0, m).
func validateStrategy(s, m int) error {
	if s < 0 || s >= m {
		return ErrInvalidStrategy
	}

	return nil
}

// validateMove checks an ordered (decreasing, increasing) pair.
func validateMove(decreasing, increasing, m int) error {
	if err := validateStrategy(decreasing, m); err != nil {
		return err
	}
	if err := validateStrategy(increasing, m); err != nil {
		return err
	}
	if decreasing == increasing {
		return ErrSameStrategy
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
