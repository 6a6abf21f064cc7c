// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the coefficient stores.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves derived defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Capacity is the fixed upper bound of the logical dimension n. Every store
//     allocates capacity×capacity (Dense) or nnzCapacity triplets (Sparse) once
//     and never grows.
//   - The non-zero capacity of a Sparse store defaults to capacity², enough to
//     hold a fully populated square system of the maximum size.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the maximum number of equations/unknowns (MAX_N).
	DefaultCapacity = 4

	// DefaultNonZeroCapacity selects capacity² as the Sparse triplet capacity.
	// Zero is a marker resolved in gatherOptions.
	DefaultNonZeroCapacity = 0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Add.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid        = "matrix: WithCapacity: capacity must be > 0"
	panicNonZeroCapacityInvalid = "matrix: WithNonZeroCapacity: capacity must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	capacity       int  // > 0; DefaultCapacity
	nnzCapacity    int  // > 0 after gatherOptions; capacity² unless overridden
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithCapacity sets the fixed maximum dimension of a store.
//
// Errors:
//   - Panics with a stable message when capacity <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCapacity(capacity int) Option {
	if capacity <= 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = capacity }
}

// WithNonZeroCapacity sets how many triplets a Sparse store may hold.
// Dense stores ignore it.
//
// Errors:
//   - Panics with a stable message when nnz <= 0.
func WithNonZeroCapacity(nnz int) Option {
	if nnz <= 0 {
		panic(panicNonZeroCapacityInvalid)
	}

	return func(o *Options) { o.nnzCapacity = nnz }
}

// WithValidateNaNInf enables strict finite-value validation (default).
// When enabled, Set and Add reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite coefficients then flow into the solver, which reports
// divergence instead of silently returning garbage.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		capacity:       DefaultCapacity,
		nnzCapacity:    DefaultNonZeroCapacity,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults and resolves derived values.
// Stage 1: start from defaultOptions.
// Stage 2: apply every non-nil Option in order (last write wins).
// Stage 3: derive nnzCapacity from capacity when not set explicitly.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.nnzCapacity == DefaultNonZeroCapacity {
		o.nnzCapacity = o.capacity * o.capacity
	}

	return o
}
