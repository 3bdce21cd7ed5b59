package simplex

import (
	"math"
	"math/bits"
)

// Binomial returns C(n, k) exactly.
//
// Returns 0 when k > n. Fails with ErrInvalidBinomial for negative inputs and
// with ErrStateSpaceOverflow when the result does not fit in an int.
//
// The product is accumulated as r ← r·(n-k+i)/i, which stays integral at every
// step; the 128-bit intermediate from bits.Mul64 keeps it exact.
func Binomial(n, k int) (int, error) {
	if n < 0 || k < 0 {
		return 0, ErrInvalidBinomial
	}
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}

	var r uint64 = 1
	var hi, lo uint64
	for i := 1; i <= k; i++ {
		hi, lo = bits.Mul64(r, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, ErrStateSpaceOverflow // quotient would not fit in 64 bits
		}
		r, _ = bits.Div64(hi, lo, uint64(i))
	}
	if r > math.MaxInt {
		return 0, ErrStateSpaceOverflow
	}

	return int(r), nil
}

// NbStates returns the number of compositions of populationSize individuals
// over nbStrategies strategies: C(populationSize + nbStrategies - 1, nbStrategies - 1).
func NbStates(populationSize, nbStrategies int) (int, error) {
	if populationSize <= 0 {
		return 0, ErrInvalidPopulationSize
	}
	if nbStrategies <= 0 {
		return 0, ErrInvalidStrategyCount
	}
	n, err := Binomial(populationSize+nbStrategies-1, nbStrategies-1)
	if err != nil {
		return 0, simplexErrorf("NbStates", err)
	}

	return n, nil
}

// Space is the set of compositions of a fixed population size over a fixed
// number of strategies. It is a small immutable value, safe to copy and to
// share between goroutines.
type Space struct {
	z, m, n int
}

// NewSpace validates (populationSize, nbStrategies) and precomputes the state count.
func NewSpace(populationSize, nbStrategies int) (Space, error) {
	n, err := NbStates(populationSize, nbStrategies)
	if err != nil {
		return Space{}, err
	}

	return Space{z: populationSize, m: nbStrategies, n: n}, nil
}

// PopulationSize returns Z.
func (s Space) PopulationSize() int { return s.z }

// NbStrategies returns m.
func (s Space) NbStrategies() int { return s.m }

// NbStates returns the number of compositions, C(Z+m-1, m-1).
func (s Space) NbStates() int { return s.n }

// compositions returns C(t+parts-1, parts-1), the number of ways to split t
// individuals over parts strategies. Only called with arguments bounded by
// the space itself, so it cannot overflow once NewSpace succeeded.
func compositions(t, parts int) int {
	if t < 0 {
		return 0
	}
	c, _ := Binomial(t+parts-1, parts-1)

	return c
}

// Index ranks state within the space.
//
// Implementation:
//   - Stage 1: validate length, signs and sum.
//   - Stage 2: for each coordinate i < m-1, add the number of compositions of
//     the remaining individuals whose i-th count is strictly larger than state[i].
//
// Complexity: O(m) binomials.
func (s Space) Index(state []int) (int, error) {
	if err := s.Validate(state); err != nil {
		return 0, simplexErrorf("Index", err)
	}

	idx := 0
	remaining := s.z
	for i := 0; i < s.m-1; i++ {
		// compositions with a larger i-th count: move state[i]+1 into slot i first.
		idx += compositions(remaining-state[i]-1, s.m-i)
		remaining -= state[i]
	}

	return idx, nil
}

// State unranks index into dst and returns it.
//
// dst is reused when cap(dst) >= m, so a scan can run allocation-free with a
// single per-goroutine buffer. dst must not be shared between goroutines.
//
// Implementation:
//   - For each coordinate, binary-search the smallest t (individuals left for the
//     remaining slots) such that more than idx compositions place at most t there;
//     the coordinate takes remaining-t.
//
// Complexity: O(m · log Z) binomials.
func (s Space) State(index int, dst []int) ([]int, error) {
	if index < 0 || index >= s.n {
		return nil, simplexErrorf("State", ErrIndexOutOfRange)
	}
	if cap(dst) < s.m {
		dst = make([]int, s.m)
	}
	dst = dst[:s.m]

	remaining := s.z
	var lo, hi, mid, parts int
	for i := 0; i < s.m-1; i++ {
		parts = s.m - i
		// smallest t in [0, remaining] with compositions(t, parts) > index
		lo, hi = 0, remaining
		for lo < hi {
			mid = lo + (hi-lo)/2
			if compositions(mid, parts) > index {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
		index -= compositions(lo-1, parts)
		dst[i] = remaining - lo
		remaining = lo
	}
	dst[s.m-1] = remaining

	return dst, nil
}

// Next advances state in place to its successor in index order and reports
// whether it did. The last state (0, …, 0, Z) has no successor; state is then
// left untouched. The caller must pass a valid state of this space.
//
// Complexity: O(m).
func (s Space) Next(state []int) bool {
	// rightmost slot before the last one that still has individuals
	p := -1
	tail := 0
	for i := s.m - 2; i >= 0; i-- {
		if state[i] > 0 {
			p = i
			break
		}
	}
	if p < 0 {
		return false
	}
	for i := p + 1; i < s.m; i++ {
		tail += state[i]
		state[i] = 0
	}
	state[p]--
	state[p+1] = tail + 1

	return true
}

// Validate checks that state belongs to the space.
//
// Errors: ErrStateLength, ErrNegativeCount, ErrStateSum.
func (s Space) Validate(state []int) error {
	return ValidateState(state, s.z, s.m)
}

// StateFromIndex is the package-level form of Space.State.
func StateFromIndex(index, populationSize, nbStrategies int) ([]int, error) {
	sp, err := NewSpace(populationSize, nbStrategies)
	if err != nil {
		return nil, err
	}

	return sp.State(index, nil)
}

// IndexFromState is the package-level form of Space.Index; the strategy
// count is taken from len(state).
func IndexFromState(state []int, populationSize int) (int, error) {
	sp, err := NewSpace(populationSize, len(state))
	if err != nil {
		return 0, err
	}

	return sp.Index(state)
}
