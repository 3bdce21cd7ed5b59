package pairwise

import "github.com/katalvlaran/evodyn/matrix"

// AbsorbingStates returns, in increasing order, the indices of states the
// chain never leaves: rows whose diagonal is at least 1 − eps. With mu = 0
// these are the monomorphic states. Returns nil for a nil matrix.
func AbsorbingStates(m *matrix.Sparse, eps float64) []int {
	if m == nil {
		return nil
	}
	var out []int
	for i, d := range m.Diagonal() {
		if d >= 1-eps {
			out = append(out, i)
		}
	}

	return out
}
