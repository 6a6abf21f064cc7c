// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Stores MUST return these sentinels and tests MUST check them via
// errors.Is. No store panics on user-triggered error conditions; panics are
// reserved for nonsensical option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Methods wrap these sentinels with their own
// "Type.Method(row,col)" context via storeErrorf; callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> index range -> NaN/Inf -> capacity -> duplicates.

var (
	// ErrInvalidDimensions indicates a requested logical dimension outside [0, capacity].
	ErrInvalidDimensions = errors.New("matrix: dimension must be within [0, capacity]")

	// ErrOutOfRange indicates that an index (row or column) is outside the fixed capacity.
	// Public indexers (At/Set/Add) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrCapacityExceeded signals that a Sparse store has no room for another triplet.
	ErrCapacityExceeded = errors.New("matrix: non-zero capacity exceeded")

	// ErrDuplicateEntry signals a second Add for a (row, col) pair already stored.
	// The store never merges or overwrites triplets.
	ErrDuplicateEntry = errors.New("matrix: duplicate (row, col) entry")

	// ErrNaNInf signals a NaN or ±Inf value was offered while the numeric
	// policy requires finite coefficients.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil store (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector shorter than the logical dimension of a store.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// storeErrorf wraps an underlying error with store method context.
func storeErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}
