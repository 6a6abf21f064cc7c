// Package matrix provides the coefficient stores of a bounded linear system.
// Dense is a fixed-capacity, row-major store with a runtime-tracked logical
// dimension, storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Method tags used when wrapping sentinels.
const (
	opDenseAt       = "Dense.At"
	opDenseSet      = "Dense.Set"
	opDenseVisitRow = "Dense.VisitRow"
)

// Dense is a capacity×capacity row-major matrix of float32 values of which
// only the leading n×n block is meaningful.
type Dense struct {
	n              int       // logical dimension, fixed at construction
	capacity       int       // fixed maximum dimension
	validateNaNInf bool      // numeric policy for Set
	data           []float32 // flat backing storage, length == capacity*capacity
}

// NewDense creates a Dense store with logical dimension n, zero-filled.
// Stage 1 (Validate): ensure 0 ≤ n ≤ capacity.
// Stage 2 (Prepare): allocate the flat capacity² backing slice once.
// Complexity: O(capacity²) time and memory.
func NewDense(n int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if n < 0 || n > o.capacity {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrInvalidDimensions)
	}

	return &Dense{
		n:              n,
		capacity:       o.capacity,
		validateNaNInf: o.validateNaNInf,
		data:           make([]float32, o.capacity*o.capacity),
	}, nil
}

// Dim returns the logical dimension n.
func (m *Dense) Dim() int { return m.n }

// Capacity returns the fixed maximum dimension.
func (m *Dense) Capacity() int { return m.capacity }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// The bound is the capacity, not n: writes outside the logical block are
// legal and simply ignored by every read operation.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.capacity || col < 0 || col >= m.capacity {
		return 0, storeErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.capacity + col, nil
}

// At retrieves the coefficient at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.indexOf(opDenseAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set overwrites the coefficient at (row, col) with v.
// Errors: ErrOutOfRange outside the capacity; ErrNaNInf for non-finite v
// under the default numeric policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.indexOf(opDenseSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && !IsFinite32(v) {
		return storeErrorf(opDenseSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// VisitRow calls fn for columns 0..n-1 of row i, zeros included.
func (m *Dense) VisitRow(i int, fn RowVisitor) error {
	if i < 0 || i >= m.n {
		return storeErrorf(opDenseVisitRow, i, 0, ErrOutOfRange)
	}
	base := i * m.capacity
	for j := 0; j < m.n; j++ {
		fn(j, m.data[base+j])
	}

	return nil
}

// RowView returns row i of the logical block as a slice aliasing the
// backing storage. Callers must treat it as read-only.
func (m *Dense) RowView(i int) ([]float32, error) {
	if i < 0 || i >= m.n {
		return nil, storeErrorf(opDenseVisitRow, i, 0, ErrOutOfRange)
	}
	base := i * m.capacity

	return m.data[base : base+m.n : base+m.n], nil
}

// Rows returns the logical n×n block as freshly allocated rows.
func (m *Dense) Rows() [][]float32 {
	out := make([][]float32, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]float32(nil), m.data[i*m.capacity:i*m.capacity+m.n]...)
	}

	return out
}

// Clone returns a deep copy of the Dense store.
// Complexity: O(capacity²).
func (m *Dense) Clone() *Dense {
	copyData := make([]float32, len(m.data))
	copy(copyData, m.data)

	return &Dense{n: m.n, capacity: m.capacity, validateNaNInf: m.validateNaNInf, data: copyData}
}

// String renders the logical block one row per line, e.g. "[2, 3]\n[1, -1]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.capacity+j])
			if j < m.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
