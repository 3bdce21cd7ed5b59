package pairwise_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/evodyn/pairwise"
	"github.com/katalvlaran/evodyn/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, pairwise.Sigmoid(0))
	assert.InDelta(t, 1/(1+math.Exp(-2)), pairwise.Sigmoid(2), 1e-15)
	assert.InDelta(t, 1/(1+math.Exp(3)), pairwise.Sigmoid(-3), 1e-15)
	assert.Equal(t, 1.0, pairwise.Sigmoid(1e6))
	assert.Equal(t, 0.0, pairwise.Sigmoid(-1e6))
	assert.Equal(t, 1.0, pairwise.Sigmoid(math.Inf(1)))
	assert.Equal(t, 0.0, pairwise.Sigmoid(math.Inf(-1)))

	for _, x := range []float64{0.1, 1, 5, 30, 700, 800} {
		assert.InDelta(t, 1, pairwise.Sigmoid(x)+pairwise.Sigmoid(-x), 1e-15, "x=%g", x)
	}
}

func TestFermi(t *testing.T) {
	assert.Equal(t, 0.5, pairwise.Fermi(0, 1, 2))
	assert.Equal(t, 0.5, pairwise.Fermi(0, -math.MaxFloat64, math.MaxFloat64))
	assert.Equal(t, 0.5, pairwise.Fermi(3, 1, 1))
	assert.Greater(t, pairwise.Fermi(1, 0, 1), 0.5, "imitate the fitter")
	assert.Less(t, pairwise.Fermi(1, 1, 0), 0.5)
}

// TestFermi_Saturation: as beta grows the selection term tends to 1 when the
// target is fitter and to 0 when it is less fit.
func TestFermi_Saturation(t *testing.T) {
	prevUp, prevDown := 0.5, 0.5
	for _, beta := range []float64{0.1, 1, 10, 100, 1e4, 1e8} {
		up := pairwise.Fermi(beta, 0, 0.01)
		down := pairwise.Fermi(beta, 0.01, 0)
		assert.GreaterOrEqual(t, up, prevUp)
		assert.LessOrEqual(t, down, prevDown)
		prevUp, prevDown = up, down
	}
	assert.Equal(t, 1.0, prevUp)
	assert.Equal(t, 0.0, prevDown)
}

func TestTransitionProbability(t *testing.T) {
	pc, err := pairwise.New(10, dominant(t))
	require.NoError(t, err)

	// selection only, huge beta: 1 → 0 is certain once the pair is drawn
	p, err := pc.TransitionProbability(1, 0, 1e6, 0, []int{5, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5*5.0/9.0, p, 1e-15)
	p, err = pc.TransitionProbability(0, 1, 1e6, 0, []int{5, 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	// pure mutation ignores fitness
	p, err = pc.TransitionProbability(0, 1, 1e6, 1, []int{5, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-15)

	// no individual to lose
	p, err = pc.TransitionProbability(1, 0, 1, 0.5, []int{10, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
}

func TestTransitionProbability_Mutation(t *testing.T) {
	pc, err := pairwise.New(6, rockPaperScissors(t))
	require.NoError(t, err)

	// monomorphic state: only mutation moves it, split evenly over the other two strategies
	for _, inc := range []int{1, 2} {
		p, err := pc.TransitionProbability(0, inc, 5, 0.2, []int{6, 0, 0})
		require.NoError(t, err)
		assert.InDelta(t, 0.1, p, 1e-15)
	}
}

func TestTransitionProbability_Invalid(t *testing.T) {
	pc, err := pairwise.New(10, dominant(t))
	require.NoError(t, err)

	_, err = pc.TransitionProbability(0, 0, 1, 0, []int{5, 5})
	assert.ErrorIs(t, err, pairwise.ErrSameStrategy)
	_, err = pc.TransitionProbability(0, 2, 1, 0, []int{5, 5})
	assert.ErrorIs(t, err, pairwise.ErrInvalidStrategy)
	_, err = pc.TransitionProbability(-1, 0, 1, 0, []int{5, 5})
	assert.ErrorIs(t, err, pairwise.ErrInvalidStrategy)
	_, err = pc.TransitionProbability(0, 1, -1, 0, []int{5, 5})
	assert.ErrorIs(t, err, pairwise.ErrInvalidBeta)
	_, err = pc.TransitionProbability(0, 1, 1, 2, []int{5, 5})
	assert.ErrorIs(t, err, pairwise.ErrInvalidMutationRate)
	_, err = pc.TransitionProbability(0, 1, 1, 0, []int{5, 6})
	assert.ErrorIs(t, err, simplex.ErrStateSum)
}
