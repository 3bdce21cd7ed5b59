package pairwise_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/evodyn/game"
	"github.com/katalvlaran/evodyn/matrix"
	"github.com/katalvlaran/evodyn/pairwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransitionMatrix_RowStochastic sweeps beta and mu on a three-strategy game.
func TestTransitionMatrix_RowStochastic(t *testing.T) {
	pc, err := pairwise.New(10, rockPaperScissors(t))
	require.NoError(t, err)

	for _, beta := range []float64{0, 1, 10} {
		for _, mu := range []float64{0, 0.01, 0.5, 1} {
			m, err := pc.CalculateTransitionMatrix(beta, mu)
			require.NoError(t, err, "beta=%g mu=%g", beta, mu)
			assert.Equal(t, pc.NbStates(), m.Rows())
			assert.Equal(t, pc.NbStates(), m.Cols())
			assert.NoError(t, matrix.ValidateRowStochastic(m), "beta=%g mu=%g", beta, mu)

			// at most m(m−1) off-diagonal entries per row, plus the diagonal
			for i := 0; i < m.Rows(); i++ {
				cols, _, err := m.Row(i)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(cols), 3*2+1)
			}
		}
	}
}

// TestTransitionMatrix_ExtremeBeta checks saturation instead of NaN/Inf.
func TestTransitionMatrix_ExtremeBeta(t *testing.T) {
	huge, err := game.NewMatrixGame([][]float64{{1e300, -1e300}, {-1e300, 1e300}})
	require.NoError(t, err)

	for _, g := range []game.Game{prisonersDilemma(t), huge} {
		pc, err := pairwise.New(10, g)
		require.NoError(t, err)
		for _, beta := range []float64{1e3, 1e6, 1e12} {
			m, err := pc.CalculateTransitionMatrix(beta, 0.01)
			require.NoError(t, err)
			m.Do(func(i, j int, v float64) {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "(%d,%d)", i, j)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			})
			assert.NoError(t, matrix.ValidateRowStochastic(m))
		}
	}
}

// TestTransitionMatrix_Absorbing: without mutation the monomorphic states are absorbing.
func TestTransitionMatrix_Absorbing(t *testing.T) {
	pc, err := pairwise.New(10, dominant(t))
	require.NoError(t, err)

	m, err := pc.CalculateTransitionMatrix(1, 0)
	require.NoError(t, err)

	idx, err := pc.IndexFromState([]int{10, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	cols, vals, err := m.Row(idx)
	require.NoError(t, err)
	assert.Equal(t, []int{idx}, cols)
	assert.Equal(t, []float64{1}, vals)
	for j := 1; j < m.Cols(); j++ {
		v, err := m.At(idx, j)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	}

	assert.Equal(t, []int{0, 10}, pairwise.AbsorbingStates(m, 1e-12))

	// any mutation opens both monomorphic states
	m, err = pc.CalculateTransitionMatrix(1, 0.01)
	require.NoError(t, err)
	assert.Empty(t, pairwise.AbsorbingStates(m, 1e-12))
	assert.Nil(t, pairwise.AbsorbingStates(nil, 1e-12))
}

// TestTransitionMatrix_Entries compares individual entries with TransitionProbability
// and with hand-computed neutral values.
func TestTransitionMatrix_Entries(t *testing.T) {
	pc, err := pairwise.New(10, prisonersDilemma(t))
	require.NoError(t, err)

	state := []int{5, 5}
	from, err := pc.IndexFromState(state)
	require.NoError(t, err)
	toD, err := pc.IndexFromState([]int{4, 6})
	require.NoError(t, err)
	toC, err := pc.IndexFromState([]int{6, 4})
	require.NoError(t, err)

	m, err := pc.CalculateTransitionMatrix(1, 0.01)
	require.NoError(t, err)

	pCD, err := pc.TransitionProbability(0, 1, 1, 0.01, state)
	require.NoError(t, err)
	pDC, err := pc.TransitionProbability(1, 0, 1, 0.01, state)
	require.NoError(t, err)

	v, err := m.At(from, toD)
	require.NoError(t, err)
	assert.InDelta(t, pCD, v, 1e-15)
	v, err = m.At(from, toC)
	require.NoError(t, err)
	assert.InDelta(t, pDC, v, 1e-15)
	v, err = m.At(from, from)
	require.NoError(t, err)
	assert.InDelta(t, 1-pCD-pDC, v, 1e-12)
	assert.Greater(t, pCD, pDC, "defection spreads")

	// neutral drift: 5/10 · 5/9 · 1/2
	neutral, err := pc.CalculateTransitionMatrix(0, 0)
	require.NoError(t, err)
	v, err = neutral.At(from, toD)
	require.NoError(t, err)
	assert.InDelta(t, 25.0/180.0, v, 1e-15)
}

// TestTransitionMatrix_WorkerIndependence: the result is identical for any pool size.
func TestTransitionMatrix_WorkerIndependence(t *testing.T) {
	build := func(workers int) []matrix.Triplet {
		pc, err := pairwise.New(15, rockPaperScissors(t), pairwise.WithWorkers(workers))
		require.NoError(t, err)
		m, err := pc.CalculateTransitionMatrix(2.5, 0.03)
		require.NoError(t, err)

		return entries(m)
	}
	want := build(1)
	for _, w := range []int{2, 3, 8, 64} {
		assert.Equal(t, want, build(w), "workers=%d", w)
	}
}

// TestTransitionMatrix_EdgeSizes covers a single strategy and a single individual.
func TestTransitionMatrix_EdgeSizes(t *testing.T) {
	single, err := game.NewFunc("single", 1, func(int, int, []int) float64 { return 7 })
	require.NoError(t, err)
	pc, err := pairwise.New(5, single)
	require.NoError(t, err)
	m, err := pc.CalculateTransitionMatrix(1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, []matrix.Triplet{{Row: 0, Col: 0, Value: 1}}, entries(m))

	pc, err = pairwise.New(1, dominant(t))
	require.NoError(t, err)
	m, err = pc.CalculateTransitionMatrix(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, m.Diagonal(), "no partner to imitate")

	m, err = pc.CalculateTransitionMatrix(1, 1)
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutation always fires")
	assert.NoError(t, matrix.ValidateRowStochastic(m))
}

// TestTransitionMatrix_CachedGame: memoization does not change the result.
func TestTransitionMatrix_CachedGame(t *testing.T) {
	plain, err := pairwise.New(12, rockPaperScissors(t), pairwise.WithWorkers(4))
	require.NoError(t, err)
	c, err := game.NewCached(rockPaperScissors(t), 12)
	require.NoError(t, err)
	cached, err := pairwise.New(12, c, pairwise.WithWorkers(4))
	require.NoError(t, err)

	a, err := plain.CalculateTransitionMatrix(1, 0.1)
	require.NoError(t, err)
	b, err := cached.CalculateTransitionMatrix(1, 0.1)
	require.NoError(t, err)
	assert.Equal(t, entries(a), entries(b))
	assert.Equal(t, cached.NbStates(), c.Len())
}

func TestTransitionMatrix_Invalid(t *testing.T) {
	pc, err := pairwise.New(10, prisonersDilemma(t))
	require.NoError(t, err)

	_, err = pc.CalculateTransitionMatrix(-1, 0)
	assert.ErrorIs(t, err, pairwise.ErrInvalidBeta)
	_, err = pc.CalculateTransitionMatrix(math.NaN(), 0)
	assert.ErrorIs(t, err, pairwise.ErrInvalidBeta)
	_, err = pc.CalculateTransitionMatrix(math.Inf(1), 0)
	assert.ErrorIs(t, err, pairwise.ErrInvalidBeta)
	_, err = pc.CalculateTransitionMatrix(1, -0.1)
	assert.ErrorIs(t, err, pairwise.ErrInvalidMutationRate)
	_, err = pc.CalculateTransitionMatrix(1, 1.1)
	assert.ErrorIs(t, err, pairwise.ErrInvalidMutationRate)
	_, err = pc.CalculateTransitionMatrix(1, math.NaN())
	assert.ErrorIs(t, err, pairwise.ErrInvalidMutationRate)

	bad, err := game.NewFunc("nan", 2, func(s, _ int, state []int) float64 {
		if state[0] == 3 {
			return math.NaN()
		}

		return 0
	})
	require.NoError(t, err)
	pc, err = pairwise.New(10, bad, pairwise.WithWorkers(3))
	require.NoError(t, err)
	_, err = pc.CalculateTransitionMatrix(1, 0)
	assert.ErrorIs(t, err, pairwise.ErrNonFiniteFitness)
}

func TestTransitionMatrix_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pc, err := pairwise.New(10, prisonersDilemma(t), pairwise.WithLogger(logger))
	require.NoError(t, err)

	_, err = pc.CalculateTransitionMatrix(1, 0)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "transition_matrix_start")
	assert.Contains(t, buf.String(), "transition_matrix_done")
	assert.Contains(t, buf.String(), "nb_states=11")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { pairwise.WithWorkers(-1) })
	assert.Panics(t, func() { pairwise.WithEpsilon(-1) })
	assert.Panics(t, func() { pairwise.WithEpsilon(math.NaN()) })
	assert.NotPanics(t, func() { pairwise.WithWorkers(0) })
}
