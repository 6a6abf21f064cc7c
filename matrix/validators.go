// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep stores and the solver minimal by delegating nil/length/finite checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsFinite32 reports whether v is neither NaN nor ±Inf.
// Shared by the stores and the solver.
func IsFinite32(v float32) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsFinite reports whether every element of x is finite.
// Complexity: O(len(x)).
func IsFinite(x []float32) bool {
	for _, v := range x {
		if !IsFinite32(v) {
			return false
		}
	}

	return true
}

// ValidateNotNil ensures the store reference is non-nil, including typed nil
// pointers wrapped in the Store interface.
//
// Returns ErrNilMatrix if s is nil.
// Complexity: O(1).
func ValidateNotNil(s Store) error {
	switch v := s.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Sparse:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector holds at least n elements.
// Positions past n are ignored by every consumer, mirroring the store rule.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float32, n int) error {
	if len(x) < n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
