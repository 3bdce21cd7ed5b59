// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/stochasticity checks here.
//  - Return sentinel errors wrapped with a validator tag; errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - *Sparse inputs take a fast path over stored entries only.
//
// AI-Hints:
//  - Use ValidateRowStochastic on every freshly assembled transition matrix in tests.
//  - Use ValidateVecLen for any MatVec-like operation to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// matrixErrorf wraps an underlying error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowStochastic checks that m is square, every entry lies in
// [-eps, 1+eps] and every row sums to 1 within eps (eps from WithEpsilon,
// DefaultEpsilon otherwise).
//
// Order: NotNil → Square → entries → row sums.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNotStochastic (wrapped with the row).
// Complexity: O(rows + nnz) for *Sparse, O(rows*cols) otherwise.
func ValidateRowStochastic(m Matrix, opts ...Option) error {
	const tag = "ValidateRowStochastic"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	eps := gatherOptions(opts...).eps

	check := func(i, j int, v float64) error {
		if isNonFinite(v) {
			return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
		}
		if v < -eps || v > 1+eps {
			return validatorErrorf(tag, fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNotStochastic))
		}

		return nil
	}

	if s, ok := m.(*Sparse); ok {
		var err error
		s.Do(func(i, j int, v float64) {
			if err == nil {
				err = check(i, j, v)
			}
		})
		if err != nil {
			return err
		}
		if dev, row := s.maxAbsRowDeviation(); dev > eps {
			return validatorErrorf(tag, fmt.Errorf("row %d deviates by %g: %w", row, dev, ErrNotStochastic))
		}

		return nil
	}

	n := m.Rows()
	var sum, v float64
	var err error
	for i := 0; i < n; i++ {
		sum = 0
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(i, j, v); err != nil {
				return err
			}
			sum += v
		}
		if math.Abs(sum-1) > eps {
			return validatorErrorf(tag, fmt.Errorf("row %d deviates by %g: %w", i, math.Abs(sum-1), ErrNotStochastic))
		}
	}

	return nil
}

// MaxRowSumDeviation returns max_i |Σ_j m[i,j] − 1| and the first row that attains it.
// Errors: ErrNilMatrix.
func MaxRowSumDeviation(m Matrix) (float64, int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, -1, err
	}
	if s, ok := m.(*Sparse); ok {
		dev, row := s.maxAbsRowDeviation()

		return dev, row, nil
	}

	worst, at := 0.0, -1
	var sum, v, d float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		sum = 0
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, -1, err
			}
			sum += v
		}
		d = math.Abs(sum - 1)
		if at < 0 || d > worst {
			worst, at = d, i
		}
	}

	return worst, at, nil
}
