// Package matrix provides converters between the dense and sparse stores.
package matrix

import "fmt"

// ToSparse returns a Sparse store holding every non-zero coefficient of the
// logical block of d, row by row in increasing column order.
//
// Time Complexity: O(n²)
func ToSparse(d *Dense) (*Sparse, error) {
	if d == nil {
		return nil, fmt.Errorf("ToSparse: %w", ErrNilMatrix)
	}
	s, err := NewSparse(d.n, d.policy()...)
	if err != nil {
		return nil, fmt.Errorf("ToSparse: %w", err)
	}
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			v := d.data[i*d.capacity+j]
			if v == 0 {
				continue
			}
			if err = s.Add(i, j, v); err != nil {
				return nil, fmt.Errorf("ToSparse: %w", err)
			}
		}
	}

	return s, nil
}

// ToDense returns a Dense store with the triplets of s written in place.
// Triplets outside the logical block are carried over as well (they remain
// ignored by every read).
//
// Time Complexity: O(capacity² + nnz)
func ToDense(s *Sparse) (*Dense, error) {
	if s == nil {
		return nil, fmt.Errorf("ToDense: %w", ErrNilMatrix)
	}
	opts := []Option{WithCapacity(s.capacity)}
	if !s.validateNaNInf {
		opts = append(opts, WithNoValidateNaNInf())
	}
	d, err := NewDense(s.n, opts...)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	for k := range s.vals {
		d.data[s.rows[k]*d.capacity+s.cols[k]] = s.vals[k]
	}

	return d, nil
}

// policy reproduces the options a Dense store was created with.
func (m *Dense) policy() []Option {
	opts := []Option{WithCapacity(m.capacity)}
	if !m.validateNaNInf {
		opts = append(opts, WithNoValidateNaNInf())
	}

	return opts
}
