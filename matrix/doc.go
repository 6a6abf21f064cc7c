// Package matrix offers the coefficient stores of a small, bounded linear
// system A·x = b, together with the diagonal-dominance pre-check.
//
// The matrix package provides:
//
//   - Dense: a fixed-capacity capacity×capacity row-major grid with an
//     explicit logical dimension n; only the leading n×n block is read.
//   - Sparse: coordinate (triplet) storage of non-zero coefficients only,
//     append-only, with a row index so per-row work is O(nnz in row).
//   - Store: the read surface both share, consumed by package gaussseidel.
//   - IsDiagonallyDominant / DominanceReport: the convergence predictor, in
//     the textbook absolute form or the weak signed form.
//   - ToSparse / ToDense converters.
//
// Every index is bounds-checked against the fixed capacity; overflow fails
// fast with ErrOutOfRange or ErrCapacityExceeded rather than truncating.
// Stores are not safe for concurrent mutation; each solve session owns its
// store exclusively.
package matrix
