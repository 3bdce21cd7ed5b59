package pairwise

import "math"

// Sigmoid returns 1/(1+e^{−x}) without overflow: the exponential is only
// ever taken of a non-positive argument, so the result saturates cleanly to
// 0 or 1 for large |x|.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// Fermi returns the probability that an individual with fitness fitnessA
// imitates one with fitness fitnessB under selection intensity beta:
// σ(beta·(fitnessB − fitnessA)).
//
// beta == 0 is neutral drift and yields exactly 0.5 even when the fitness
// gap overflows.
func Fermi(beta, fitnessA, fitnessB float64) float64 {
	if beta == 0 {
		return 0.5
	}

	return Sigmoid(beta * (fitnessB - fitnessA))
}
