// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (compressed sparse row) & triplet assembly.
//
// Purpose:
//   - Store large, mostly-empty matrices (Markov transition matrices over a
//     combinatorial state space) in O(rows + nnz) memory.
//   - Assemble from unordered (row, col, value) triplets produced independently
//     by parallel workers; merging is deterministic for a given triplet order.
//   - Expose the vector products a stationary-distribution solver iterates.
//
// Layout:
//   - rowPtr has length rows+1; row i occupies [rowPtr[i], rowPtr[i+1]).
//   - colIdx/vals hold column indices (strictly increasing within a row) and values.
//
// Complexity quicksheet:
//   - NewSparse: O(rows + t + Σ k_i²) for t triplets and k_i entries in row i
//     (rows of a transition matrix hold at most m(m-1)+1 entries).
//   - At: O(log k_i); Set: O(log k_i) update, O(nnz) insert.
//   - MulVec/VecMul/RowSums: O(rows + nnz).
package matrix

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	ctxNewSparse = "NewSparse"
	ctxMulVec    = "MulVec"
	ctxVecMul    = "VecMul"
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a compressed-sparse-row matrix of float64 values.
// Absent entries read as 0. The zero value is not usable; build with NewSparse.
type Sparse struct {
	r, c           int
	rowPtr         []int     // len r+1, non-decreasing, rowPtr[r] == len(vals)
	colIdx         []int     // column of each stored entry
	vals           []float64 // value of each stored entry
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse assembles a rows×cols CSR matrix from triplets.
// MAIN DESCRIPTION:
//   - Sort triplets by row (counting sort) then by column (stable insertion
//     sort per row), sum duplicates, optionally drop exact zeros.
//
// Implementation:
//   - Stage 1: validate shape, every index and (under policy) every value.
//   - Stage 2: count entries per row; prefix-sum into rowPtr.
//   - Stage 3: scatter in input order (stable), then order each row by column.
//   - Stage 4: merge duplicate columns in place and compact.
//
// Behavior highlights:
//   - The caller's slice is never modified.
//   - Duplicates are summed in input order, so the result is bitwise identical
//     for identical triplet sequences regardless of how they were produced.
//
// Errors:
//   - ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf (wrapped with coordinates).
//
// Complexity:
//   - Time O(rows + t + Σ k_i²), Space O(rows + t).
func NewSparse(rows, cols int, triplets []Triplet, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	// Stage 1: validate.
	for _, t := range triplets {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, sparseErrorf(ctxNewSparse, t.Row, t.Col, ErrOutOfRange)
		}
		if o.validateNaNInf && isNonFinite(t.Value) {
			return nil, sparseErrorf(ctxNewSparse, t.Row, t.Col, ErrNaNInf)
		}
	}

	// Stage 2: row counts → offsets.
	rowPtr := make([]int, rows+1)
	for _, t := range triplets {
		rowPtr[t.Row+1]++
	}
	for i := 0; i < rows; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	// Stage 3: stable scatter, then per-row column order.
	colIdx := make([]int, len(triplets))
	vals := make([]float64, len(triplets))
	next := make([]int, rows)
	copy(next, rowPtr[:rows])
	var pos int
	for _, t := range triplets {
		pos = next[t.Row]
		colIdx[pos] = t.Col
		vals[pos] = t.Value
		next[t.Row]++
	}
	for i := 0; i < rows; i++ {
		insertionSortRow(colIdx[rowPtr[i]:rowPtr[i+1]], vals[rowPtr[i]:rowPtr[i+1]])
	}

	// Stage 4: merge duplicates and compact in place.
	w := 0
	start := 0
	for i := 0; i < rows; i++ {
		end := rowPtr[i+1]
		rowPtr[i] = w
		for k := start; k < end; k++ {
			if w > rowPtr[i] && colIdx[w-1] == colIdx[k] {
				vals[w-1] += vals[k]
				continue
			}
			colIdx[w] = colIdx[k]
			vals[w] = vals[k]
			w++
		}
		if o.dropZeros {
			w = compactZeros(colIdx, vals, rowPtr[i], w)
		}
		start = end
	}
	rowPtr[rows] = w

	return &Sparse{
		r:              rows,
		c:              cols,
		rowPtr:         rowPtr,
		colIdx:         colIdx[:w:w],
		vals:           vals[:w:w],
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// insertionSortRow orders one row by column, stably. Rows are short.
func insertionSortRow(cols []int, vals []float64) {
	var j, c int
	var v float64
	for i := 1; i < len(cols); i++ {
		c, v = cols[i], vals[i]
		for j = i - 1; j >= 0 && cols[j] > c; j-- {
			cols[j+1], vals[j+1] = cols[j], vals[j]
		}
		cols[j+1], vals[j+1] = c, v
	}
}

// compactZeros removes exact zeros from [lo, hi) and returns the new end.
func compactZeros(cols []int, vals []float64, lo, hi int) int {
	w := lo
	for k := lo; k < hi; k++ {
		if vals[k] == 0 {
			continue
		}
		cols[w], vals[w] = cols[k], vals[k]
		w++
	}

	return w
}

// Rows returns the row count. Complexity: O(1).
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count. Complexity: O(1).
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored entries (explicit zeros included).
func (s *Sparse) NNZ() int { return len(s.vals) }

// find locates (row, col) in storage. ok reports presence; pos is the
// insertion point when absent.
func (s *Sparse) find(row, col int) (pos int, ok bool) {
	lo, hi := s.rowPtr[row], s.rowPtr[row+1]
	k := sort.SearchInts(s.colIdx[lo:hi], col)
	pos = lo + k

	return pos, pos < hi && s.colIdx[pos] == col
}

// At returns the entry at (row, col); absent entries read as 0.
//
// Errors: ErrOutOfRange.
// Complexity: O(log k_row).
func (s *Sparse) At(row, col int) (float64, error) {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return 0, sparseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	if pos, ok := s.find(row, col); ok {
		return s.vals[pos], nil
	}

	return 0, nil
}

// Set stores v at (row, col), inserting a new entry when absent.
// Writing 0 to an absent entry is a no-op.
//
// Errors: ErrOutOfRange; ErrNaNInf under the finite-value policy.
// Complexity: O(log k_row) update, O(rows + nnz) insert.
func (s *Sparse) Set(row, col int, v float64) error {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return sparseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if s.validateNaNInf && isNonFinite(v) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	pos, ok := s.find(row, col)
	if ok {
		s.vals[pos] = v

		return nil
	}
	if v == 0 {
		return nil
	}

	s.colIdx = append(s.colIdx, 0)
	copy(s.colIdx[pos+1:], s.colIdx[pos:])
	s.colIdx[pos] = col
	s.vals = append(s.vals, 0)
	copy(s.vals[pos+1:], s.vals[pos:])
	s.vals[pos] = v
	for i := row + 1; i <= s.r; i++ {
		s.rowPtr[i]++
	}

	return nil
}

// Clone returns a deep copy. Complexity: O(rows + nnz).
func (s *Sparse) Clone() Matrix {
	return &Sparse{
		r:              s.r,
		c:              s.c,
		rowPtr:         append([]int(nil), s.rowPtr...),
		colIdx:         append([]int(nil), s.colIdx...),
		vals:           append([]float64(nil), s.vals...),
		validateNaNInf: s.validateNaNInf,
	}
}

// Row returns copies of the column indices and values stored in row i.
func (s *Sparse) Row(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= s.r {
		return nil, nil, sparseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]

	return append([]int(nil), s.colIdx[lo:hi]...), append([]float64(nil), s.vals[lo:hi]...), nil
}

// RowSum returns the sum of row i.
func (s *Sparse) RowSum(i int) (float64, error) {
	if i < 0 || i >= s.r {
		return 0, sparseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return s.rowSum(i), nil
}

func (s *Sparse) rowSum(i int) float64 {
	sum := 0.0
	for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
		sum += s.vals[k]
	}

	return sum
}

// RowSums returns every row sum. Complexity: O(rows + nnz).
func (s *Sparse) RowSums() []float64 {
	out := make([]float64, s.r)
	for i := range out {
		out[i] = s.rowSum(i)
	}

	return out
}

// Diagonal returns the main diagonal (length min(rows, cols)).
func (s *Sparse) Diagonal() []float64 {
	n := min(s.r, s.c)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if pos, ok := s.find(i, i); ok {
			out[i] = s.vals[pos]
		}
	}

	return out
}

// Do calls fn for every stored entry in row-major order.
func (s *Sparse) Do(fn func(row, col int, v float64)) {
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			fn(i, s.colIdx[k], s.vals[k])
		}
	}
}

// MulVec computes y = S·x.
//
// Errors: ErrNilMatrix for nil x; ErrDimensionMismatch when len(x) != Cols().
// Complexity: O(rows + nnz).
func (s *Sparse) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, s.c); err != nil {
		return nil, matrixErrorf(ctxMulVec, err)
	}
	y := make([]float64, s.r)
	var acc float64
	for i := 0; i < s.r; i++ {
		acc = 0
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			acc += s.vals[k] * x[s.colIdx[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// VecMul computes y = xᵀ·S, i.e. one step of a distribution x under a
// row-stochastic S.
//
// Errors: ErrNilMatrix for nil x; ErrDimensionMismatch when len(x) != Rows().
// Complexity: O(rows + nnz).
func (s *Sparse) VecMul(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, s.r); err != nil {
		return nil, matrixErrorf(ctxVecMul, err)
	}
	y := make([]float64, s.c)
	var xi float64
	for i := 0; i < s.r; i++ {
		xi = x[i]
		if xi == 0 {
			continue
		}
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			y[s.colIdx[k]] += xi * s.vals[k]
		}
	}

	return y, nil
}

// ToDense materialises the matrix. Complexity: O(rows*cols).
// Refuse this for large state spaces: the point of Sparse is to avoid it.
func (s *Sparse) ToDense() (*Dense, error) {
	d, err := NewDense(s.r, s.c)
	if err != nil {
		return nil, err
	}
	d.validateNaNInf = s.validateNaNInf
	s.Do(func(i, j int, v float64) { d.data[i*d.c+j] = v })

	return d, nil
}

// String lists stored entries as "(i, j) v" lines, row-major.
func (s *Sparse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse %dx%d nnz=%d\n", s.r, s.c, len(s.vals))
	s.Do(func(i, j int, v float64) {
		fmt.Fprintf(&sb, "(%d, %d) %g\n", i, j, v)
	})

	return sb.String()
}

// maxAbsRowDeviation returns max_i |Σ_j S[i,j] - 1| and the row attaining it.
func (s *Sparse) maxAbsRowDeviation() (float64, int) {
	worst, at := 0.0, -1
	var d float64
	for i := 0; i < s.r; i++ {
		d = math.Abs(s.rowSum(i) - 1)
		if d > worst || at < 0 {
			worst, at = d, i
		}
	}

	return worst, at
}
