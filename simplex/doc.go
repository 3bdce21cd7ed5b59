// Package simplex enumerates the discrete simplex of population compositions.
//
// A population of Z individuals playing m strategies is described by its
// composition: a vector of m non-negative counts summing to Z. The set of all
// compositions is finite,
//
//	|S| = C(Z + m - 1, m - 1)         (stars and bars)
//
// and this package maps it onto the dense index range [0, |S|) and back.
//
// Ordering:
//
//	Compositions are ranked in reverse-lexicographic order: index 0 is the
//	monomorphic state (Z, 0, …, 0) and the last index is (0, …, 0, Z).
//	For two strategies, index i ↔ (Z-i, i).
//
// Usage:
//
//	sp, err := simplex.NewSpace(10, 3)  // Z=10, m=3 → 66 states
//	buf := make([]int, sp.NbStrategies())
//	state, _ := sp.State(42, buf)       // unrank into buf, no allocation
//	idx, _ := sp.Index(state)           // rank back: idx == 42
//
// Performance:
//
//   - Index: O(m) binomials.
//   - State: O(m · log Z) binomials (binary search per coordinate).
//   - Next:  O(m) amortised successor, used by sequential scans.
//
// Nothing is enumerated eagerly; a Space is three integers.
package simplex
