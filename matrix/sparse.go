// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

const (
	opSparseAdd      = "Sparse.Add"
	opSparseTriplet  = "Sparse.Triplet"
	opSparseVisitRow = "Sparse.VisitRow"
)

// Sparse stores non-zero coefficients in coordinate (triplet) format:
// three parallel append-only slices plus a row index.
//
// Invariants:
//   - len(rows) == len(cols) == len(vals) == NNZ() ≤ nnzCapacity.
//   - no two triplets share a (row, col) pair; Add rejects duplicates.
//   - byRow[r] lists, in insertion order, the positions of the triplets of row r.
//
// Triplets are never removed or merged.
type Sparse struct {
	n              int
	capacity       int
	nnzCapacity    int
	validateNaNInf bool

	rows []int
	cols []int
	vals []float32

	byRow [][]int
	seen  map[pairKey]struct{}
}

// NewSparse creates an empty Sparse store with logical dimension n.
// Complexity: O(capacity) for the row index; triplet slices are
// preallocated to nnzCapacity.
func NewSparse(n int, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	if n < 0 || n > o.capacity {
		return nil, fmt.Errorf("NewSparse(%d): %w", n, ErrInvalidDimensions)
	}

	return &Sparse{
		n:              n,
		capacity:       o.capacity,
		nnzCapacity:    o.nnzCapacity,
		validateNaNInf: o.validateNaNInf,
		rows:           make([]int, 0, o.nnzCapacity),
		cols:           make([]int, 0, o.nnzCapacity),
		vals:           make([]float32, 0, o.nnzCapacity),
		byRow:          make([][]int, o.capacity),
		seen:           make(map[pairKey]struct{}, o.nnzCapacity),
	}, nil
}

// Dim returns the logical dimension n.
func (s *Sparse) Dim() int { return s.n }

// Capacity returns the fixed maximum dimension.
func (s *Sparse) Capacity() int { return s.capacity }

// NonZeroCapacity returns how many triplets the store can hold.
func (s *Sparse) NonZeroCapacity() int { return s.nnzCapacity }

// NNZ returns the number of stored triplets.
func (s *Sparse) NNZ() int { return len(s.vals) }

// Add appends the triplet (row, col, v).
//
// Errors (in priority order):
//   - ErrNilMatrix        when s is nil.
//   - ErrOutOfRange       when row or col is outside [0, capacity).
//   - ErrNaNInf           for non-finite v under the default numeric policy.
//   - ErrCapacityExceeded when NNZ() == NonZeroCapacity().
//   - ErrDuplicateEntry   when (row, col) is already stored.
//
// Complexity: O(1) amortized.
func (s *Sparse) Add(row, col int, v float32) error {
	if s == nil {
		return storeErrorf(opSparseAdd, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= s.capacity || col < 0 || col >= s.capacity {
		return storeErrorf(opSparseAdd, row, col, ErrOutOfRange)
	}
	if s.validateNaNInf && !IsFinite32(v) {
		return storeErrorf(opSparseAdd, row, col, ErrNaNInf)
	}
	if len(s.vals) >= s.nnzCapacity {
		return storeErrorf(opSparseAdd, row, col, ErrCapacityExceeded)
	}
	key := pairKey{r: row, c: col}
	if _, dup := s.seen[key]; dup {
		return storeErrorf(opSparseAdd, row, col, ErrDuplicateEntry)
	}

	s.seen[key] = struct{}{}
	s.byRow[row] = append(s.byRow[row], len(s.vals))
	s.rows = append(s.rows, row)
	s.cols = append(s.cols, col)
	s.vals = append(s.vals, v)

	return nil
}

// Triplet returns the k-th stored triplet in insertion order.
func (s *Sparse) Triplet(k int) (Triplet, error) {
	if k < 0 || k >= len(s.vals) {
		return Triplet{}, storeErrorf(opSparseTriplet, k, 0, ErrOutOfRange)
	}

	return Triplet{Row: s.rows[k], Col: s.cols[k], Value: s.vals[k]}, nil
}

// Triplets returns a copy of every stored triplet in insertion order.
func (s *Sparse) Triplets() []Triplet {
	out := make([]Triplet, len(s.vals))
	for k := range s.vals {
		out[k] = Triplet{Row: s.rows[k], Col: s.cols[k], Value: s.vals[k]}
	}

	return out
}

// VisitRow calls fn for each triplet of row i whose column is < n,
// in insertion order. Uses the row index; never scans the whole list.
func (s *Sparse) VisitRow(i int, fn RowVisitor) error {
	if i < 0 || i >= s.n {
		return storeErrorf(opSparseVisitRow, i, 0, ErrOutOfRange)
	}
	for _, k := range s.byRow[i] {
		if s.cols[k] < s.n {
			fn(s.cols[k], s.vals[k])
		}
	}

	return nil
}

// Clone returns a deep copy of the Sparse store.
// Complexity: O(capacity + nnz).
func (s *Sparse) Clone() *Sparse {
	c := &Sparse{
		n:              s.n,
		capacity:       s.capacity,
		nnzCapacity:    s.nnzCapacity,
		validateNaNInf: s.validateNaNInf,
		rows:           append(make([]int, 0, s.nnzCapacity), s.rows...),
		cols:           append(make([]int, 0, s.nnzCapacity), s.cols...),
		vals:           append(make([]float32, 0, s.nnzCapacity), s.vals...),
		byRow:          make([][]int, s.capacity),
		seen:           make(map[pairKey]struct{}, len(s.seen)),
	}
	for r, ks := range s.byRow {
		c.byRow[r] = append([]int(nil), ks...)
	}
	for k := range s.seen {
		c.seen[k] = struct{}{}
	}

	return c
}

// String renders one "(row,col)=value" triplet per line in insertion order.
func (s *Sparse) String() string {
	var sb strings.Builder
	for k := range s.vals {
		fmt.Fprintf(&sb, "(%d,%d)=%g\n", s.rows[k], s.cols[k], s.vals[k])
	}

	return sb.String()
}
