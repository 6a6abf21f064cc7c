package gaussseidel_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seidel/matrix"
)

// Fixtures.
var (
	// dominant3 has the exact solution ≈ (1.04327, 2.26923, −1.08173).
	dominant3 = [][]float32{{10, -1, 2}, {-1, 11, -1}, {2, -1, 10}}
	b3        = []float32{6, 25, -11}

	// dominant4 has the exact solution (1, 2, −1, 1).
	dominant4 = [][]float32{
		{10, -1, 2, 0},
		{-1, 11, -1, 3},
		{2, -1, 10, -1},
		{0, 3, -1, 8},
	}
	b4 = []float32{6, 25, -11, 15}
)

func denseOf(t testing.TB, rows [][]float32, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(rows), opts...)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}

	return d
}

func sparseOf(t testing.TB, rows [][]float32, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparse(len(rows), opts...)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				require.NoError(t, s.Add(i, j, v))
			}
		}
	}

	return s
}

// referenceSolve solves rows·x = b directly in float64 with gonum.
func referenceSolve(t testing.TB, rows [][]float32, b []float32) []float64 {
	t.Helper()
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	rhs := make([]float64, n)
	for i, v := range b {
		rhs[i] = float64(v)
	}

	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, rhs)))

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out
}
