package pairwise_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/evodyn/game"
	"github.com/katalvlaran/evodyn/pairwise"
)

func benchGame(b *testing.B, m int) game.Game {
	b.Helper()
	p := make([][]float64, m)
	for i := range p {
		p[i] = make([]float64, m)
		for j := range p[i] {
			p[i][j] = float64((i*7+j*3)%5) - 2
		}
	}
	g, err := game.NewMatrixGame(p)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkCalculateTransitionMatrix(b *testing.B) {
	for _, tc := range []struct{ z, m, workers int }{
		{100, 3, 1},
		{100, 3, 8},
		{30, 5, 8},
	} {
		b.Run(fmt.Sprintf("Z=%d/m=%d/w=%d", tc.z, tc.m, tc.workers), func(b *testing.B) {
			pc, err := pairwise.New(tc.z, benchGame(b, tc.m), pairwise.WithWorkers(tc.workers))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := pc.CalculateTransitionMatrix(1, 0.01); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCalculateGradientOfSelection(b *testing.B) {
	pc, err := pairwise.New(100, benchGame(b, 4))
	if err != nil {
		b.Fatal(err)
	}
	state := []int{25, 25, 25, 25}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pc.CalculateGradientOfSelection(1, state); err != nil {
			b.Fatal(err)
		}
	}
}
