// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse stores.
// This file intentionally contains ONLY domain-facing types. Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// RowVisitor receives one stored coefficient of a row.
// Dense stores call it for every column j < n (zeros included); sparse stores
// call it only for stored triplets whose column is < n.
type RowVisitor func(col int, v float32)

// Store is the read surface shared by Dense and Sparse, consumed by the
// dominance checker and the Gauss-Seidel solver.
//
// Contract:
//   - Dim returns the logical dimension n (0 ≤ n ≤ Capacity()).
//   - VisitRow walks row i (0 ≤ i < n) in a deterministic order and ignores
//     every coefficient outside the logical n×n submatrix.
//   - VisitRow returns ErrOutOfRange if i is outside [0, n).
//
// Complexity notes: Dim/Capacity are O(1); VisitRow is O(n) for Dense and
// O(nnz in row) for Sparse.
type Store interface {
	// Dim returns the logical dimension n.
	Dim() int

	// Capacity returns the fixed maximum dimension.
	Capacity() int

	// VisitRow calls fn for every coefficient of row i inside the n×n submatrix.
	VisitRow(i int, fn RowVisitor) error
}

// Triplet is one coordinate-format coefficient (row, col, value).
type Triplet struct {
	Row   int
	Col   int
	Value float32
}

// pairKey is an ordered (row, col) pair used by Sparse to reject duplicates.
// Complexity: O(1) to build; hashed in O(1) on every Add.
type pairKey struct {
	r int // row index
	c int // column index
}
