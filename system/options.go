package system

import (
	"github.com/katalvlaran/seidel/gaussseidel"
	"github.com/katalvlaran/seidel/matrix"
)

// StoreKind selects the coefficient storage of a session.
type StoreKind int

const (
	// KindDense stores the full n×n block.
	KindDense StoreKind = iota
	// KindSparse stores non-zero coefficients as triplets.
	KindSparse
)

// String returns the flag spelling of the kind.
func (k StoreKind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// Option configures a System.
type Option func(*options)

type options struct {
	storeOpts  []matrix.Option
	solverOpts []gaussseidel.Option
	sink       Sink
	dominance  matrix.DominanceMode
}

// WithStoreOptions forwards options (capacity, numeric policy) to the store.
func WithStoreOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.storeOpts = append(o.storeOpts, opts...) }
}

// WithSolverOptions forwards options (tolerance, ceiling) to gaussseidel.Solve.
func WithSolverOptions(opts ...gaussseidel.Option) Option {
	return func(o *options) { o.solverOpts = append(o.solverOpts, opts...) }
}

// WithSink sets the output collaborator. A nil sink discards everything.
func WithSink(s Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithDominanceMode selects the dominance test used by CheckDominance.
func WithDominanceMode(mode matrix.DominanceMode) Option {
	return func(o *options) { o.dominance = mode }
}
