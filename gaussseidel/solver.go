// SPDX-License-Identifier: MIT

package gaussseidel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seidel/matrix"
)

// zeroSum is the initial value of every row accumulator.
const zeroSum float32 = 0.0

// rowKernel is the per-row arithmetic a sweep needs. denseKernel reads the
// flat rows of *matrix.Dense directly; storeKernel goes through VisitRow and
// serves Sparse (or any other Store).
type rowKernel interface {
	// offDiagonal returns Σ_{j≠i} a_ij·x_j.
	offDiagonal(i int, x []float32) float32
	// dot returns Σ_j a_ij·x_j.
	dot(i int, x []float32) float32
	// diagonal returns a_ii (0 when not stored).
	diagonal(i int) float32
}

type denseKernel struct{ rows [][]float32 }

func (k denseKernel) offDiagonal(i int, x []float32) float32 {
	acc := zeroSum
	for j, a := range k.rows[i] {
		if j != i {
			acc += a * x[j]
		}
	}

	return acc
}

func (k denseKernel) dot(i int, x []float32) float32 {
	acc := zeroSum
	for j, a := range k.rows[i] {
		acc += a * x[j]
	}

	return acc
}

func (k denseKernel) diagonal(i int) float32 { return k.rows[i][i] }

type storeKernel struct{ s matrix.Store }

func (k storeKernel) offDiagonal(i int, x []float32) float32 {
	acc := zeroSum
	_ = k.s.VisitRow(i, func(j int, a float32) {
		if j != i {
			acc += a * x[j]
		}
	})

	return acc
}

func (k storeKernel) dot(i int, x []float32) float32 {
	acc := zeroSum
	_ = k.s.VisitRow(i, func(j int, a float32) { acc += a * x[j] })

	return acc
}

func (k storeKernel) diagonal(i int) float32 {
	d := zeroSum
	_ = k.s.VisitRow(i, func(j int, a float32) {
		if j == i {
			d = a
		}
	})

	return d
}

// newKernel picks the fast path for *matrix.Dense and the visitor path otherwise.
func newKernel(a matrix.Store, n int) rowKernel {
	if d, ok := a.(*matrix.Dense); ok {
		rows := make([][]float32, n)
		for i := 0; i < n; i++ {
			rows[i], _ = d.RowView(i) // i < n, cannot fail
		}

		return denseKernel{rows: rows}
	}

	return storeKernel{s: a}
}

// Solve runs Gauss-Seidel on A·x = b, updating x in place.
//
// Implementation:
//   - Stage 1: validate the store and vector lengths; n = 0 returns at once.
//   - Stage 2: reject any |a_ii| ≤ pivot epsilon (ErrZeroDiagonal), x untouched.
//   - Stage 3: sweep rows 0..n-1, x_i = (b_i − Σ_{j≠i} a_ij·x_j) / a_ii using
//     the values already updated in this sweep.
//   - Stage 4: residual = Σ_i |Σ_j a_ij·x_j − b_i|; notify the observer;
//     stop on non-finite values, on residual ≤ tol, or at the sweep ceiling.
//
// Inputs:
//   - a: dense or sparse store of dimension n.
//   - b: constants, len(b) ≥ n.
//   - x: seed and output, len(x) ≥ n; positions ≥ n are not touched.
//
// Returns:
//   - Result: final state; Result.X aliases x[:n]. Always populated, also
//     alongside ErrDiverged and ErrNotConverged.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch, ErrZeroDiagonal,
//     ErrDiverged, ErrNotConverged (all wrapped with the "Solve" tag).
//
// Complexity:
//   - Time O(maxIter·n²) dense, O(maxIter·(n+nnz)) sparse; Space O(n).
func Solve(a matrix.Store, b, x []float32, opts ...Option) (Result, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return Result{}, solveErrorf(err)
	}
	o := gatherOptions(opts...)
	n := a.Dim()
	if len(b) < n || len(x) < n {
		return Result{}, solveErrorf(ErrDimensionMismatch)
	}
	res := Result{X: x[:n], Status: StatusConverged}
	if n == 0 {
		return res, nil
	}

	k := newKernel(a, n)
	diag := make([]float32, n)
	var i int
	for i = 0; i < n; i++ {
		diag[i] = k.diagonal(i)
		if abs32(diag[i]) <= o.pivotEps {
			res.Status = StatusInvalidMatrix
			return res, fmt.Errorf("%s: row %d: %w", opSolve, i, ErrZeroDiagonal)
		}
	}

	var iter int
	var r float32
	for iter = 0; iter < o.maxIter; iter++ {
		for i = 0; i < n; i++ {
			x[i] = (b[i] - k.offDiagonal(i, x)) / diag[i]
		}
		r = residual(k, b, x, n)
		res.Iterations, res.Residual = iter+1, r
		if o.observer != nil {
			o.observer(iter, r)
		}
		if !matrix.IsFinite32(r) || !matrix.IsFinite(x[:n]) {
			res.Status = StatusDiverged
			return res, solveErrorf(ErrDiverged)
		}
		if r <= o.tol {
			return res, nil
		}
	}
	res.Status = StatusMaxIterations

	return res, solveErrorf(ErrNotConverged)
}

// residual returns Σ_i |Σ_j a_ij·x_j − b_i|, indexed by row.
func residual(k rowKernel, b, x []float32, n int) float32 {
	sum := zeroSum
	for i := 0; i < n; i++ {
		sum += abs32(k.dot(i, x) - b[i])
	}

	return sum
}

// Residual returns the sum of absolute row residuals Σ_i |(A·x)_i − b_i|,
// the quantity Solve compares against the tolerance.
func Residual(a matrix.Store, b, x []float32) (float32, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	n := a.Dim()
	if len(b) < n || len(x) < n {
		return 0, fmt.Errorf("Residual: %w", ErrDimensionMismatch)
	}

	return residual(newKernel(a, n), b, x, n), nil
}

// MaxResidual returns max_i |(A·x)_i − b_i|.
func MaxResidual(a matrix.Store, b, x []float32) (float32, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("MaxResidual: %w", err)
	}
	n := a.Dim()
	if len(b) < n || len(x) < n {
		return 0, fmt.Errorf("MaxResidual: %w", ErrDimensionMismatch)
	}
	k := newKernel(a, n)
	worst := zeroSum
	for i := 0; i < n; i++ {
		if d := abs32(k.dot(i, x) - b[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}

func abs32(v float32) float32 { return float32(math.Abs(float64(v))) }
