// SPDX-License-Identifier: MIT

// Package gaussseidel: functional configuration for Solve.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: WithX panics only on nonsensical values.
//   - Defaults are the single source of truth for the convergence policy.
package gaussseidel

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the residual threshold that ends iteration.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations is the sweep ceiling (safety fallback when
	// convergence stalls or diverges).
	DefaultMaxIterations = 1000

	// DefaultPivotEpsilon rejects exactly-zero diagonals only. Tiny non-zero
	// pivots are allowed and caught by the non-finite check if they blow up.
	DefaultPivotEpsilon = 0.0
)

const (
	panicToleranceInvalid     = "gaussseidel: WithTolerance: tol must be finite, non-negative"
	panicMaxIterationsInvalid = "gaussseidel: WithMaxIterations: maxIter must be > 0"
	panicPivotEpsilonInvalid  = "gaussseidel: WithPivotEpsilon: eps must be finite, non-negative"
)

// Option mutates solver options.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	tol      float32
	maxIter  int
	pivotEps float32
	observer Observer
}

// WithTolerance sets the residual threshold.
// Panics when tol is negative or not finite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = float32(tol) }
}

// WithMaxIterations sets the sweep ceiling.
// Panics when maxIter <= 0.
func WithMaxIterations(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = maxIter }
}

// WithPivotEpsilon treats any diagonal with |a_ii| <= eps as zero.
// Panics when eps is negative or not finite.
func WithPivotEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotEpsilonInvalid)
	}

	return func(o *Options) { o.pivotEps = float32(eps) }
}

// WithObserver installs a per-sweep trace callback. A nil fn disables tracing.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.observer = fn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:      DefaultTolerance,
		maxIter:  DefaultMaxIterations,
		pivotEps: DefaultPivotEpsilon,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
