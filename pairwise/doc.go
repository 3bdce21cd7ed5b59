// Package pairwise computes the exact dynamics of a finite, well-mixed
// population evolving under the Pairwise Comparison (Fermi) imitation rule.
//
// Given a population size Z and a game.Game with m strategies, a
// *PairwiseComparison produces two in-memory artifacts:
//
//   - CalculateTransitionMatrix(beta, mu): the row-stochastic Markov chain over
//     all C(Z+m−1, m−1) compositions, as a CSR *matrix.Sparse. Entry (i, j) is
//     the probability that one elementary step moves state i to state j.
//   - CalculateGradientOfSelection(beta, state): the expected drift of every
//     strategy count at one composition, selection only (mu = 0).
//
// One elementary step picks an individual of strategy d (probability c_d/Z).
// With probability 1−mu it compares itself with a random other individual of
// strategy i (probability c_i/(Z−1)) and imitates it with probability
// σ(beta·(f_i − f_d)); with probability mu it switches to one of the other
// m−1 strategies uniformly:
//
//	T(d→i) = c_d/Z · [ (1−mu)·c_i/(Z−1)·σ(beta·(f_i−f_d)) + mu/(m−1) ]
//
// States are indexed with package simplex (reverse-lexicographic order); row
// and column indices of the matrix use the same order.
//
// Concurrency:
//
//   - Matrix rows and gradient fields are computed by a bounded pool of
//     goroutines over contiguous row chunks (WithWorkers). Each worker owns its
//     state buffer and its triplet list; the lists are merged in chunk order,
//     so the result does not depend on the worker count.
//   - The game is called concurrently with distinct state slices.
//   - UpdatePopulationSize and UpdateGame publish a new immutable snapshot;
//     calls already running finish on the snapshot they started with.
//
// There is no cancellation: cost is bounded by the caller's choice of Z and m.
package pairwise
