package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/evodyn/matrix"
)

// MatrixGame is a symmetric two-player normal-form game played in a
// well-mixed population: every individual meets every other individual once
// and earns the row payoff A[i][j] against an opponent playing j.
//
// Fitness of strategy i in composition s of a population of size Z:
//
//	f_i(s) = Σ_j A[i][j] · (s_j − δ_ij) / (Z − 1)
//
// (the focal individual does not play against itself). For Z == 1 there is no
// opponent and the fitness is 0.
type MatrixGame struct {
	m       int
	a       []float64     // row-major m×m copy of the payoffs for the hot path
	payoffs *matrix.Dense // kept for Payoffs()
	names   []string
}

var (
	_ Game      = (*MatrixGame)(nil)
	_ Describer = (*MatrixGame)(nil)
)

// NewMatrixGame builds a game from a square payoff table.
//
// Errors: ErrInvalidStrategyCount (empty), ErrNonSquarePayoffs, ErrNonFinitePayoff.
func NewMatrixGame(payoffs [][]float64) (*MatrixGame, error) {
	if len(payoffs) == 0 {
		return nil, ErrInvalidStrategyCount
	}
	for _, row := range payoffs {
		if len(row) != len(payoffs) {
			return nil, ErrNonSquarePayoffs
		}
	}
	d, err := matrix.NewDenseFrom(payoffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonFinitePayoff, err)
	}

	return NewMatrixGameFromDense(d)
}

// NewMatrixGameFromDense builds a game from a square *matrix.Dense.
// The matrix is copied; later changes to d do not affect the game.
func NewMatrixGameFromDense(d *matrix.Dense) (*MatrixGame, error) {
	if d == nil {
		return nil, ErrInvalidStrategyCount
	}
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, ErrNonSquarePayoffs
	}
	m := d.Rows()
	a := make([]float64, m*m)
	var v float64
	var err error
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if v, err = d.At(i, j); err != nil {
				return nil, err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFinitePayoff
			}
			a[i*m+j] = v
		}
	}

	return &MatrixGame{m: m, a: a, payoffs: d.Clone().(*matrix.Dense)}, nil
}

// WithNames attaches strategy labels used by String(); extra or missing
// labels are ignored.
func (g *MatrixGame) WithNames(names ...string) *MatrixGame {
	g.names = append([]string(nil), names...)

	return g
}

// NbStrategies returns m.
func (g *MatrixGame) NbStrategies() int { return g.m }

// Fitness returns Σ_j A[strategy][j]·(state[j] − δ)/(Z − 1).
func (g *MatrixGame) Fitness(strategy, populationSize int, state []int) float64 {
	if populationSize <= 1 {
		return 0
	}
	row := g.a[strategy*g.m : (strategy+1)*g.m]
	var sum float64
	for j, a := range row {
		n := state[j]
		if j == strategy {
			n--
		}
		sum += a * float64(n)
	}

	return sum / float64(populationSize-1)
}

// Payoff returns A[i][j]. Errors: matrix.ErrOutOfRange.
func (g *MatrixGame) Payoff(i, j int) (float64, error) {
	return g.payoffs.At(i, j)
}

// Payoffs returns a copy of the payoff matrix.
func (g *MatrixGame) Payoffs() *matrix.Dense {
	return g.payoffs.Clone().(*matrix.Dense)
}

// Type returns "MatrixGame".
func (g *MatrixGame) Type() string { return "MatrixGame" }

// String renders the payoff table, one labeled row per strategy.
func (g *MatrixGame) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MatrixGame(%d strategies)\n", g.m)
	for i := 0; i < g.m; i++ {
		label := fmt.Sprintf("s%d", i)
		if i < len(g.names) && g.names[i] != "" {
			label = g.names[i]
		}
		fmt.Fprintf(&sb, "%s: %v\n", label, g.a[i*g.m:(i+1)*g.m])
	}

	return sb.String()
}
