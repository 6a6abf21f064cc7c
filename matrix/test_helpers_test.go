// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense and sparse stores.
//   • Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/seidel/matrix"
)

// MustDense builds an n×n *Dense from rows (n = len(rows)) or fails the test.
func MustDense(t testing.TB, rows [][]float32, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), opts...)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", len(rows), err)
	}
	for i, row := range rows {
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// MustSparse builds a *Sparse holding the non-zero entries of rows, row by
// row in column order, or fails the test.
func MustSparse(t testing.TB, rows [][]float32, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparse(len(rows), opts...)
	if err != nil {
		t.Fatalf("NewSparse(%d): %v", len(rows), err)
	}
	for i, row := range rows {
		for j, v := range row {
			if v == 0 {
				continue
			}
			if err = s.Add(i, j, v); err != nil {
				t.Fatalf("Add(%d,%d): %v", i, j, err)
			}
		}
	}

	return s
}

// rowOf collects row i of s as a dense slice of length s.Dim().
func rowOf(t testing.TB, s matrix.Store, i int) []float32 {
	t.Helper()
	out := make([]float32, s.Dim())
	if err := s.VisitRow(i, func(col int, v float32) { out[col] = v }); err != nil {
		t.Fatalf("VisitRow(%d): %v", i, err)
	}

	return out
}

// Fixtures shared across files.
var (
	// dominant3 is strictly diagonally dominant under both modes.
	dominant3 = [][]float32{
		{10, -1, 2},
		{-1, 11, -1},
		{2, -1, 10},
	}

	// mixedSign passes the signed test (Σ off = -8 < 1) but fails the absolute one.
	mixedSign = [][]float32{
		{1, -4, -4},
		{0, 5, 1},
		{1, 1, 5},
	}

	// negativeDiag fails the signed test (Σ off = 1 is not < −10) but passes
	// the absolute one (1 < 10).
	negativeDiag = [][]float32{
		{-10, 1},
		{2, 8},
	}
)
