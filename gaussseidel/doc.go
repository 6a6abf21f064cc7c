// Package gaussseidel solves small linear systems A·x = b by Gauss-Seidel
// iteration over any matrix.Store (dense or sparse).
//
// 🚀 What is Gauss-Seidel?
//
//	An iterative method that sweeps the equations in order and updates each
//	unknown in place, so later rows of the same sweep already see the new
//	values (the difference from Jacobi). Strict diagonal dominance of A is a
//	sufficient condition for convergence; see matrix.IsDiagonallyDominant.
//
// ✨ Behavior:
//   - single precision (float32) throughout, x updated in place;
//   - residual Σ_i |(A·x)_i − b_i| after every sweep, streamed to an Observer;
//   - stops at residual ≤ tolerance (1e-4) or after 1000 sweeps;
//   - zero diagonals are rejected up front (ErrZeroDiagonal), blow-ups to
//     NaN/Inf are reported (ErrDiverged), and hitting the ceiling is reported
//     (ErrNotConverged); the Result is populated in every case.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDense(2)
//	_ = a.Set(0, 0, 4); _ = a.Set(0, 1, 1)
//	_ = a.Set(1, 0, 2); _ = a.Set(1, 1, 5)
//	b := []float32{9, 12}
//	x := make([]float32, 2)
//	res, err := gaussseidel.Solve(a, b, x, gaussseidel.WithTolerance(1e-5))
//
// Performance:
//
//   - Time:   O(iterations·n²) dense, O(iterations·(n+nnz)) sparse
//   - Memory: O(n)
package gaussseidel
