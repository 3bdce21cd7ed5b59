package pairwise_test

import (
	"testing"

	"github.com/katalvlaran/evodyn/game"
	"github.com/katalvlaran/evodyn/matrix"
	"github.com/stretchr/testify/require"
)

// dominant returns a two-strategy game in which strategy 0 always earns 1
// and strategy 1 always earns 0.
func dominant(t testing.TB) game.Game {
	t.Helper()
	g, err := game.NewFunc("dominant", 2, func(s, _ int, _ []int) float64 {
		if s == 0 {
			return 1
		}

		return 0
	})
	require.NoError(t, err)

	return g
}

// prisonersDilemma is the (C, D) donation-style dilemma.
func prisonersDilemma(t testing.TB) *game.MatrixGame {
	t.Helper()
	g, err := game.NewMatrixGame([][]float64{{3, 0}, {5, 1}})
	require.NoError(t, err)

	return g
}

// coordination is symmetric: both strategies earn the same in (Z/2, Z/2).
func coordination(t testing.TB) *game.MatrixGame {
	t.Helper()
	g, err := game.NewMatrixGame([][]float64{{2, 0}, {0, 2}})
	require.NoError(t, err)

	return g
}

// rockPaperScissors is a three-strategy cyclic game.
func rockPaperScissors(t testing.TB) *game.MatrixGame {
	t.Helper()
	g, err := game.NewMatrixGame([][]float64{
		{0, -1, 1},
		{1, 0, -1},
		{-1, 1, 0},
	})
	require.NoError(t, err)

	return g
}

// entries lists every stored entry of s in row-major order.
func entries(s *matrix.Sparse) []matrix.Triplet {
	var out []matrix.Triplet
	s.Do(func(i, j int, v float64) {
		out = append(out, matrix.Triplet{Row: i, Col: j, Value: v})
	})

	return out
}
