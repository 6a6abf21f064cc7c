package gaussseidel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seidel/gaussseidel"
	"github.com/katalvlaran/seidel/matrix"
)

// TestSolve_DominantConverges checks both stores against the gonum direct solve.
func TestSolve_DominantConverges(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float32
		b    []float32
	}{
		{"3x3", dominant3, b3},
		{"4x4", dominant4, b4},
	}
	for _, tc := range cases {
		want := referenceSolve(t, tc.rows, tc.b)
		for _, store := range []matrix.Store{denseOf(t, tc.rows), sparseOf(t, tc.rows)} {
			t.Run(tc.name, func(t *testing.T) {
				x := make([]float32, len(tc.b))
				res, err := gaussseidel.Solve(store, tc.b, x)
				require.NoError(t, err, "%T", store)
				assert.Equal(t, gaussseidel.StatusConverged, res.Status)
				assert.True(t, res.Converged())
				assert.LessOrEqual(t, res.Residual, float32(gaussseidel.DefaultTolerance))

				worst, err := gaussseidel.MaxResidual(store, tc.b, x)
				require.NoError(t, err)
				assert.LessOrEqual(t, worst, float32(gaussseidel.DefaultTolerance))

				for i := range want {
					assert.InDelta(t, want[i], float64(x[i]), 1e-3, "x[%d]", i)
				}
			})
		}
	}
}

// TestSolve_DenseSparseAgree feeds the same 2×2 dominant system to both stores.
func TestSolve_DenseSparseAgree(t *testing.T) {
	rows := [][]float32{{4, 1}, {2, 5}}
	b := []float32{9, 12}

	xd := make([]float32, 2)
	_, err := gaussseidel.Solve(denseOf(t, rows), b, xd)
	require.NoError(t, err)

	xs := make([]float32, 2)
	_, err = gaussseidel.Solve(sparseOf(t, rows), b, xs)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{float64(xd[0]), float64(xd[1])},
		[]float64{float64(xs[0]), float64(xs[1])}, 1e-3)
	assert.InDelta(t, 11.0/6.0, float64(xd[0]), 1e-3)
	assert.InDelta(t, 5.0/3.0, float64(xd[1]), 1e-3)
}

// TestSolve_SingleEquation: 5x = 10 converges in one sweep with zero residual.
func TestSolve_SingleEquation(t *testing.T) {
	x := []float32{0}
	res, err := gaussseidel.Solve(denseOf(t, [][]float32{{5}}), []float32{10}, x)
	require.NoError(t, err)
	assert.Equal(t, []float32{2}, x)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, float32(0), res.Residual)
}

// TestSolve_ZeroDiagonal rejects the matrix before touching x.
func TestSolve_ZeroDiagonal(t *testing.T) {
	rows := [][]float32{{0, 1}, {1, 1}}
	for _, store := range []matrix.Store{denseOf(t, rows), sparseOf(t, rows)} {
		x := []float32{7, 7}
		res, err := gaussseidel.Solve(store, []float32{1, 2}, x)
		require.ErrorIs(t, err, gaussseidel.ErrZeroDiagonal, "%T", store)
		assert.Equal(t, gaussseidel.StatusInvalidMatrix, res.Status)
		assert.Equal(t, 0, res.Iterations)
		assert.Equal(t, []float32{7, 7}, x)
		assert.True(t, matrix.IsFinite(x))
	}
}

// TestSolve_PivotEpsilon treats tiny diagonals as zero when asked to.
func TestSolve_PivotEpsilon(t *testing.T) {
	d := denseOf(t, [][]float32{{1e-6, 0}, {0, 1}})
	x := make([]float32, 2)
	_, err := gaussseidel.Solve(d, []float32{1, 1}, x, gaussseidel.WithPivotEpsilon(1e-5))
	require.ErrorIs(t, err, gaussseidel.ErrZeroDiagonal)

	_, err = gaussseidel.Solve(d, []float32{1, 1}, x)
	require.NoError(t, err)
}

// TestSolve_NonDominantDiverges: 2x+3y=5, x−y=3 has the solution (2.8, −0.2)
// but Gauss-Seidel in this row order amplifies the error by 1.5 per sweep.
// The solver must report it instead of returning NaN/Inf as a solution.
func TestSolve_NonDominantDiverges(t *testing.T) {
	rows := [][]float32{{2, 3}, {1, -1}}
	b := []float32{5, 3}
	want := referenceSolve(t, rows, b)
	require.InDelta(t, 2.8, want[0], 1e-9)
	require.InDelta(t, -0.2, want[1], 1e-9)

	x := make([]float32, 2)
	res, err := gaussseidel.Solve(denseOf(t, rows), b, x)
	require.ErrorIs(t, err, gaussseidel.ErrDiverged)
	assert.Equal(t, gaussseidel.StatusDiverged, res.Status)
	assert.False(t, res.Converged())
	assert.Less(t, res.Iterations, gaussseidel.DefaultMaxIterations)
}

// TestSolve_ReorderedSystemConverges swaps the equations of the system above,
// which makes the sweep contract (factor −2/3) onto (2.8, −0.2).
func TestSolve_ReorderedSystemConverges(t *testing.T) {
	rows := [][]float32{{1, -1}, {2, 3}}
	b := []float32{3, 5}
	for _, store := range []matrix.Store{denseOf(t, rows), sparseOf(t, rows)} {
		x := make([]float32, 2)
		res, err := gaussseidel.Solve(store, b, x)
		require.NoError(t, err)
		assert.Equal(t, gaussseidel.StatusConverged, res.Status)
		assert.InDelta(t, 2.8, float64(x[0]), 1e-3)
		assert.InDelta(t, -0.2, float64(x[1]), 1e-3)
	}
}

// TestSolve_Idempotent re-solves from a converged iterate.
func TestSolve_Idempotent(t *testing.T) {
	for _, store := range []matrix.Store{denseOf(t, dominant4), sparseOf(t, dominant4)} {
		x := make([]float32, 4)
		_, err := gaussseidel.Solve(store, b4, x)
		require.NoError(t, err)

		res, err := gaussseidel.Solve(store, b4, x)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Iterations)
		assert.InDelta(t, 0, float64(res.Residual), gaussseidel.DefaultTolerance)
	}
}

// TestSolve_MaxIterations distinguishes the ceiling from convergence.
func TestSolve_MaxIterations(t *testing.T) {
	x := make([]float32, 3)
	res, err := gaussseidel.Solve(denseOf(t, dominant3), b3, x,
		gaussseidel.WithTolerance(0), gaussseidel.WithMaxIterations(3))
	require.ErrorIs(t, err, gaussseidel.ErrNotConverged)
	assert.Equal(t, gaussseidel.StatusMaxIterations, res.Status)
	assert.Equal(t, 3, res.Iterations)
	assert.Greater(t, res.Residual, float32(0))
	assert.Equal(t, x, res.X)
}

// TestSolve_ZeroDimension is a no-op.
func TestSolve_ZeroDimension(t *testing.T) {
	d, err := matrix.NewDense(0)
	require.NoError(t, err)
	called := false
	res, err := gaussseidel.Solve(d, nil, nil, gaussseidel.WithObserver(func(int, float32) { called = true }))
	require.NoError(t, err)
	assert.Equal(t, gaussseidel.StatusConverged, res.Status)
	assert.Equal(t, 0, res.Iterations)
	assert.Empty(t, res.X)
	assert.False(t, called)
}

// TestSolve_InputValidation covers nil stores and short vectors.
func TestSolve_InputValidation(t *testing.T) {
	_, err := gaussseidel.Solve(nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = gaussseidel.Solve(nilDense, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	d := denseOf(t, dominant3)
	_, err = gaussseidel.Solve(d, []float32{1, 2}, make([]float32, 3))
	require.ErrorIs(t, err, gaussseidel.ErrDimensionMismatch)
	_, err = gaussseidel.Solve(d, b3, make([]float32, 2))
	require.ErrorIs(t, err, gaussseidel.ErrDimensionMismatch)
}

// TestSolve_ExtraVectorCapacityUntouched checks positions ≥ n are left alone.
func TestSolve_ExtraVectorCapacityUntouched(t *testing.T) {
	x := []float32{0, 0, 0, 42}
	b := append(append([]float32(nil), b3...), 99)
	res, err := gaussseidel.Solve(denseOf(t, dominant3), b, x)
	require.NoError(t, err)
	assert.Len(t, res.X, 3)
	assert.Equal(t, float32(42), x[3])
}

// TestSolve_ObserverTrace checks the per-sweep trace.
func TestSolve_ObserverTrace(t *testing.T) {
	var iters []int
	var residuals []float32
	obs := func(i int, r float32) {
		iters = append(iters, i)
		residuals = append(residuals, r)
	}
	x := make([]float32, 3)
	res, err := gaussseidel.Solve(sparseOf(t, dominant3), b3, x, gaussseidel.WithObserver(obs))
	require.NoError(t, err)

	require.Len(t, iters, res.Iterations)
	for i, it := range iters {
		assert.Equal(t, i, it)
	}
	assert.Equal(t, res.Residual, residuals[len(residuals)-1])
	assert.Greater(t, residuals[0], residuals[len(residuals)-1])
}

// TestSolve_NonFiniteCoefficient reports divergence when unchecked Inf
// coefficients reach the solver.
func TestSolve_NonFiniteCoefficient(t *testing.T) {
	d := denseOf(t, [][]float32{{2, 0}, {0, 2}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, d.Set(0, 1, float32(math.Inf(1))))

	x := []float32{0, 1}
	res, err := gaussseidel.Solve(d, []float32{1, 1}, x)
	require.ErrorIs(t, err, gaussseidel.ErrDiverged)
	assert.Equal(t, gaussseidel.StatusDiverged, res.Status)
	assert.Equal(t, 1, res.Iterations)
}

func TestResidual(t *testing.T) {
	d := denseOf(t, [][]float32{{2, 0}, {0, 4}})
	r, err := gaussseidel.Residual(d, []float32{2, 4}, []float32{1, 2})
	require.NoError(t, err)
	assert.Equal(t, float32(4), r) // |2−2| + |8−4|

	m, err := gaussseidel.MaxResidual(d, []float32{1, 4}, []float32{1, 2})
	require.NoError(t, err)
	assert.Equal(t, float32(4), m)

	_, err = gaussseidel.Residual(nil, nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = gaussseidel.MaxResidual(d, []float32{1}, []float32{1, 2})
	assert.ErrorIs(t, err, gaussseidel.ErrDimensionMismatch)
}

func TestOptionsPanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { gaussseidel.WithTolerance(-1) })
	assert.Panics(t, func() { gaussseidel.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { gaussseidel.WithMaxIterations(0) })
	assert.Panics(t, func() { gaussseidel.WithPivotEpsilon(math.Inf(1)) })
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "converged", gaussseidel.StatusConverged.String())
	assert.Equal(t, "max-iterations", gaussseidel.StatusMaxIterations.String())
	assert.Equal(t, "diverged", gaussseidel.StatusDiverged.String())
	assert.Equal(t, "invalid-matrix", gaussseidel.StatusInvalidMatrix.String())
	assert.Equal(t, "unknown", gaussseidel.Status(42).String())
}
