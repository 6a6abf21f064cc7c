// SPDX-License-Identifier: MIT

package gaussseidel

import (
	"errors"
	"fmt"
)

// Sentinel errors of the solver. Match them with errors.Is; Solve wraps them
// with the "Solve: ..." operation tag.
var (
	// ErrZeroDiagonal indicates an invalid matrix: some |a_ii| is at or below
	// the pivot epsilon (a missing sparse diagonal counts as zero).
	// Reported before the first sweep; x is left untouched.
	ErrZeroDiagonal = errors.New("gaussseidel: zero diagonal entry (invalid matrix)")

	// ErrDiverged indicates the iterate or the residual became NaN or ±Inf.
	ErrDiverged = errors.New("gaussseidel: iteration diverged to a non-finite value")

	// ErrNotConverged indicates the sweep ceiling was reached with the
	// residual still above tolerance.
	ErrNotConverged = errors.New("gaussseidel: iteration ceiling reached without convergence")

	// ErrDimensionMismatch indicates b or x is shorter than the system dimension.
	ErrDimensionMismatch = errors.New("gaussseidel: vector shorter than system dimension")
)

const opSolve = "Solve"

// solveErrorf wraps err with the Solve operation tag.
func solveErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSolve, err)
}
