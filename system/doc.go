// Package system runs one Gauss-Seidel solve session end to end.
//
// A System owns a dense or sparse coefficient store plus the b and x
// vectors. It talks to the outside world through two collaborators:
//
//   - LineReader supplies comma-separated lines: the first matrix line fixes
//     the dimension n (capped at the store capacity), then one line per
//     remaining row, then one line for b.
//   - Sink receives warnings (dominance failure, truncated lines), the
//     per-sweep residual trace, and the final A, b, x and n.
//
// Over-long lines are truncated explicitly: the dropped count is recorded as
// a Truncation and reported through Sink.Warn. Malformed numbers reject the
// line with ErrParse and abort the session. Solver conditions (zero
// diagonal, divergence, non-convergence) come back from Solve/Run as
// gaussseidel errors after the report has been emitted.
package system
