// Package game defines the fitness oracle consumed by the evodyn kernels and
// a few ready-made implementations.
//
// A Game answers one question: what is the fitness of strategy i when the
// population of size Z has composition s? The kernels call it many times, from
// many goroutines at once, each with its own state slice.
//
// Implementations:
//
//   - MatrixGame: two-player normal-form game played by random pairs in a
//     well-mixed population (payoff matrix A, fitness Σ_j A[i][j]·(s_j−δ_ij)/(Z−1)).
//   - Func: adapter for a plain function; the hook for oracles that live
//     behind a process or language boundary.
//   - Cached: memoizing wrapper, one fitness vector per state, safe for
//     concurrent use.
//
// Contract (every implementation):
//
//   - Deterministic: same (strategy, Z, state) ⇒ same value.
//   - Reentrant: callable concurrently with distinct state slices.
//   - Non-retaining: the state slice belongs to the caller and may be reused
//     after Fitness returns.
package game
