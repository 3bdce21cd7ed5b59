package pairwise_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/evodyn/game"
	"github.com/katalvlaran/evodyn/pairwise"
	"github.com/katalvlaran/evodyn/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradient_SymmetricFixedPoint(t *testing.T) {
	pc, err := pairwise.New(10, coordination(t))
	require.NoError(t, err)

	for _, beta := range []float64{0, 1, 100} {
		g, err := pc.CalculateGradientOfSelection(beta, []int{5, 5})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0}, g, "beta=%g", beta)
	}
}

func TestGradient_TwoStrategiesAntisymmetric(t *testing.T) {
	for _, g := range []game.Game{prisonersDilemma(t), coordination(t), dominant(t)} {
		pc, err := pairwise.New(17, g)
		require.NoError(t, err)
		for c := 0; c <= 17; c++ {
			grad, err := pc.CalculateGradientOfSelection(0.7, []int{c, 17 - c})
			require.NoError(t, err)
			assert.Equal(t, grad[0], -grad[1], "state (%d,%d)", c, 17-c)
		}
	}
}

// TestGradient_MatchesTransitions rebuilds g[k] from TransitionProbability with mu = 0.
func TestGradient_MatchesTransitions(t *testing.T) {
	pc, err := pairwise.New(9, rockPaperScissors(t))
	require.NoError(t, err)
	const beta = 1.3

	for i := 0; i < pc.NbStates(); i++ {
		state, err := pc.StateFromIndex(i)
		require.NoError(t, err)
		grad, err := pc.CalculateGradientOfSelection(beta, state)
		require.NoError(t, err)

		for k := 0; k < 3; k++ {
			want := 0.0
			for l := 0; l < 3; l++ {
				if l == k {
					continue
				}
				in, err := pc.TransitionProbability(l, k, beta, 0, state)
				require.NoError(t, err)
				out, err := pc.TransitionProbability(k, l, beta, 0, state)
				require.NoError(t, err)
				want += in - out
			}
			assert.InDelta(t, want, grad[k], 1e-14, "state %v k=%d", state, k)
		}
	}
}

func TestGradient_Direction(t *testing.T) {
	pc, err := pairwise.New(10, prisonersDilemma(t))
	require.NoError(t, err)

	g, err := pc.CalculateGradientOfSelection(1, []int{5, 5})
	require.NoError(t, err)
	assert.Less(t, g[0], 0.0, "cooperators decline")
	assert.Greater(t, g[1], 0.0)

	g, err = pc.CalculateGradientOfSelection(1, []int{10, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, g, "monomorphic states do not move")
}

func TestGradient_Invalid(t *testing.T) {
	pc, err := pairwise.New(10, prisonersDilemma(t))
	require.NoError(t, err)

	_, err = pc.CalculateGradientOfSelection(1, []int{5, 5, 0})
	assert.ErrorIs(t, err, simplex.ErrStateLength)
	_, err = pc.CalculateGradientOfSelection(1, []int{5, 4})
	assert.ErrorIs(t, err, simplex.ErrStateSum)
	_, err = pc.CalculateGradientOfSelection(1, []int{11, -1})
	assert.ErrorIs(t, err, simplex.ErrNegativeCount)
	_, err = pc.CalculateGradientOfSelection(-0.5, []int{5, 5})
	assert.ErrorIs(t, err, pairwise.ErrInvalidBeta)

	inf, err := game.NewFunc("inf", 2, func(int, int, []int) float64 { return math.Inf(1) })
	require.NoError(t, err)
	require.NoError(t, pc.UpdateGame(inf))
	_, err = pc.CalculateGradientOfSelection(1, []int{5, 5})
	assert.ErrorIs(t, err, pairwise.ErrNonFiniteFitness)
	_, err = pc.CalculateGradients(1)
	assert.ErrorIs(t, err, pairwise.ErrNonFiniteFitness)
}

func TestCalculateGradients(t *testing.T) {
	pc, err := pairwise.New(8, rockPaperScissors(t), pairwise.WithWorkers(3))
	require.NoError(t, err)

	field, err := pc.CalculateGradients(2)
	require.NoError(t, err)
	assert.Equal(t, pc.NbStates(), field.Rows())
	assert.Equal(t, 3, field.Cols())

	for i := 0; i < pc.NbStates(); i++ {
		state, err := pc.StateFromIndex(i)
		require.NoError(t, err)
		want, err := pc.CalculateGradientOfSelection(2, state)
		require.NoError(t, err)
		got, err := field.Row(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "state %v", state)
	}

	_, err = pc.CalculateGradients(math.NaN())
	assert.ErrorIs(t, err, pairwise.ErrInvalidBeta)
}
