// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse storages.
package matrix

// Triplet is one (row, col, value) entry of a sparse matrix under assembly.
// Producers append triplets in any order; NewSparse sorts and merges them.
type Triplet struct {
	Row   int     // zero-based row index
	Col   int     // zero-based column index
	Value float64 // entry value; duplicates at the same (Row, Col) are summed
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: Rows/Cols are O(1); At/Set are O(1) on *Dense and
// O(log nnz(row)) on *Sparse; Clone is proportional to stored entries.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
