package simplex

import "math/rand"

// Sample draws a composition uniformly at random and unranks it into dst.
//
// The random source is passed explicitly; the package holds no global RNG
// state. rng is not goroutine-safe, so give every goroutine its own.
func (s Space) Sample(rng *rand.Rand, dst []int) ([]int, error) {
	if rng == nil {
		return nil, simplexErrorf("Sample", ErrNilRNG)
	}

	return s.State(rng.Intn(s.n), dst)
}
