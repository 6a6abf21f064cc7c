// SPDX-License-Identifier: MIT

package gaussseidel

// Status is the terminal state of a Solve call.
type Status int

const (
	// StatusConverged means the residual dropped to or below the tolerance.
	StatusConverged Status = iota

	// StatusMaxIterations means the sweep ceiling was hit first.
	StatusMaxIterations

	// StatusDiverged means the iterate or residual became non-finite.
	StatusDiverged

	// StatusInvalidMatrix means no sweep ran because a diagonal was zero.
	StatusInvalidMatrix
)

// String returns a short lowercase label.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max-iterations"
	case StatusDiverged:
		return "diverged"
	case StatusInvalidMatrix:
		return "invalid-matrix"
	default:
		return "unknown"
	}
}

// Observer receives the trace after every sweep: the 0-based sweep index
// and the residual computed right after it.
type Observer func(iteration int, residual float32)

// Result summarizes a Solve call. X aliases the caller's x slice (trimmed
// to n), which holds the final iterate.
type Result struct {
	X          []float32
	Iterations int     // number of completed sweeps
	Residual   float32 // Σ_i |(A·x)_i − b_i| after the last sweep
	Status     Status
}

// Converged reports whether the run ended by meeting the tolerance.
func (r Result) Converged() bool { return r.Status == StatusConverged }
