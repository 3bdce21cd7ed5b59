// Package matrix offers the numeric containers produced by the evodyn kernels.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, used for
//     payoff tables and per-state gradient fields.
//   - Sparse, a compressed-sparse-row matrix assembled from (row, col, value)
//     triplets, used for Markov transition matrices whose dimension is the
//     number of population states.
//   - Validators (ValidateRowStochastic, MaxRowSumDeviation) and the
//     vector products (MulVec, VecMul) downstream solvers need.
//
// Numeric policy (epsilon, NaN/Inf rejection, zero dropping) is configured with
// functional options and never through global state.
//
// Dense memory is O(r·c); for transition matrices prefer Sparse, whose memory
// is O(rows + nnz) with at most m(m-1)+1 entries per row.
package matrix
