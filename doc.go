// Package seidel solves small, bounded linear systems A·x = b with the
// Gauss-Seidel method, over dense or sparse coefficient storage.
//
// 🚀 What is seidel?
//
//	A compact, dependency-light toolkit for systems of at most a handful of
//	unknowns (4 by default):
//		• Stores: fixed-capacity Dense grid and append-only Sparse triplets
//		• Pre-check: diagonal dominance (absolute or legacy signed test)
//		• Solver: in-place Gauss-Seidel with a residual trace
//		• Session: line-oriented input and pluggable output sinks
//
// ✨ Guarantees
//
//   - Fail fast on overflow – indices beyond capacity are errors, over-long
//     input lines are truncated explicitly and reported
//   - No silent NaN – zero diagonals, divergence and non-convergence are
//     distinct, checkable outcomes
//   - Deterministic – fixed sweep order, no goroutines, no global state
//
// Under the hood:
//
//	matrix/      : Dense and Sparse stores, dominance checker, converters
//	gaussseidel/ : the iterative solver, residual helpers
//	system/      : one solve session: LineReader in, Sink out
//	cmd/seidel/  : command-line front end (cobra, logrus, gonum/plot)
//
//	go get github.com/katalvlaran/seidel
package seidel
