// Package evodyn computes the exact stochastic dynamics of strategy
// evolution in finite, well-mixed populations under the Pairwise Comparison
// (Fermi) imitation rule.
//
// What is in the box
//
//	simplex/     population compositions: count, rank, unrank, iterate, sample
//	game/        fitness oracle interface, normal-form games, concurrent-safe memo
//	matrix/      Dense and CSR Sparse matrices, triplet assembly, stochastic checks
//	pairwise/    transition probabilities, transition matrix, gradient of selection
//	cmd/evodyn/  CLI printing states, matrix summaries and gradients as JSON
//
// Quick start
//
//	pd, _ := game.NewMatrixGame([][]float64{{3, 0}, {5, 1}})
//	pc, _ := pairwise.New(50, pd)
//	T, _ := pc.CalculateTransitionMatrix(1, 0.01) // 51×51, row-stochastic
//	g, _ := pc.CalculateGradientOfSelection(1, []int{25, 25})
//
// The transition matrix is the input of a stationary-distribution solver;
// the gradient feeds flow-field plots. Neither is cached: each call returns a
// fresh value owned by the caller.
//
// Scale: the number of states is C(Z+m−1, m−1). Z=100 with m=3 gives 5151
// states; Z=100 with m=6 already gives about 96 million. Choose Z and m so
// that the matrix fits in memory.
package evodyn
