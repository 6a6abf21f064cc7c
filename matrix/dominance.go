// SPDX-License-Identifier: MIT

package matrix

import "math"

// DominanceMode selects how the off-diagonal sum is compared to the diagonal.
type DominanceMode int

const (
	// DominanceAbsolute is the textbook strict test: Σ_{j≠i}|a_ij| < |a_ii|.
	DominanceAbsolute DominanceMode = iota

	// DominanceSigned is the weak legacy test: Σ_{j≠i} a_ij < a_ii.
	// It over-reports dominance when off-diagonal terms are negative and
	// under-reports it when the diagonal is negative.
	DominanceSigned
)

// DefaultDominanceMode is the mode used when callers do not choose one.
const DefaultDominanceMode = DominanceAbsolute

// String returns the flag spelling of the mode.
func (m DominanceMode) String() string {
	switch m {
	case DominanceAbsolute:
		return "absolute"
	case DominanceSigned:
		return "signed"
	default:
		return "unknown"
	}
}

// RowDominance is the per-row outcome of the dominance test.
type RowDominance struct {
	Row         int
	Diagonal    float32 // a_ii, or |a_ii| in absolute mode; 0 when not stored
	OffDiagonal float32 // Σ_{j≠i} a_ij, or Σ|a_ij| in absolute mode
	OK          bool    // OffDiagonal < Diagonal
}

// DominanceReport evaluates the dominance test row by row.
// A nil store yields nil. The report is a pure read of s.
// Complexity: O(n²) for Dense, O(n + nnz) for Sparse.
func DominanceReport(s Store, mode DominanceMode) []RowDominance {
	if ValidateNotNil(s) != nil {
		return nil
	}
	n := s.Dim()
	out := make([]RowDominance, n)
	var i int
	for i = 0; i < n; i++ {
		row := RowDominance{Row: i}
		_ = s.VisitRow(i, func(col int, v float32) {
			if mode == DominanceAbsolute {
				v = float32(math.Abs(float64(v)))
			}
			if col == i {
				row.Diagonal = v
			} else {
				row.OffDiagonal += v
			}
		})
		row.OK = row.OffDiagonal < row.Diagonal
		out[i] = row
	}

	return out
}

// IsDiagonallyDominant reports whether every row of s passes the dominance
// test in the given mode. It never errors: a nil store is simply not
// dominant, and an empty (n = 0) system is vacuously dominant.
func IsDiagonallyDominant(s Store, mode DominanceMode) bool {
	if ValidateNotNil(s) != nil {
		return false
	}
	for _, r := range DominanceReport(s, mode) {
		if !r.OK {
			return false
		}
	}

	return true
}
