package simplex

// ValidateState checks that state is a composition of populationSize over
// nbStrategies strategies.
//
// Order of checks: length → signs → sum. Errors are returned bare so callers
// can wrap them with their own call-site tag.
// Complexity: O(m).
func ValidateState(state []int, populationSize, nbStrategies int) error {
	if len(state) != nbStrategies {
		return ErrStateLength
	}
	sum := 0
	for _, c := range state {
		if c < 0 {
			return ErrNegativeCount
		}
		sum += c
	}
	if sum != populationSize {
		return ErrStateSum
	}

	return nil
}
