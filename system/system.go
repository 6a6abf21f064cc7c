package system

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/seidel/gaussseidel"
	"github.com/katalvlaran/seidel/matrix"
)

// Prompts and warnings shown through the collaborators.
const (
	PromptMatrix    = "Please enter the elements of coefficients matrix (A), one row per line, separated by commas."
	PromptConstants = "Please enter the elements of constants vector (b), separated by commas."

	WarnNotDominant = "The linear system is not diagonally dominant, so Gauss-Seidel may diverge."
)

// System is one solve session: it owns its store and its b and x vectors
// exclusively, and lives for a single solve.
type System struct {
	kind     StoreKind
	opts     options
	capacity int

	n      int
	dense  *matrix.Dense
	sparse *matrix.Sparse
	b      []float32
	x      []float32

	truncations []Truncation
	result      gaussseidel.Result
	solveErr    error
}

// New creates an empty session of the given storage kind.
func New(kind StoreKind, opts ...Option) (*System, error) {
	o := options{dominance: matrix.DefaultDominanceMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.sink == nil {
		o.sink = nopSink{}
	}
	if kind != KindDense && kind != KindSparse {
		return nil, fmt.Errorf("system: unknown store kind %d", int(kind))
	}
	probe, err := matrix.NewDense(0, o.storeOpts...)
	if err != nil {
		return nil, err
	}

	return &System{kind: kind, opts: o, capacity: probe.Capacity()}, nil
}

// Dim returns n, established by the first matrix line.
func (s *System) Dim() int { return s.n }

// Store returns the populated coefficient store, nil before ReadMatrix.
func (s *System) Store() matrix.Store {
	if s.kind == KindSparse {
		if s.sparse == nil {
			return nil
		}
		return s.sparse
	}
	if s.dense == nil {
		return nil
	}

	return s.dense
}

// B returns the constants vector.
func (s *System) B() []float32 { return s.b }

// X returns the current iterate.
func (s *System) X() []float32 { return s.x }

// Truncations returns every over-long line seen so far.
func (s *System) Truncations() []Truncation { return s.truncations }

// ReadMatrix reads the coefficient rows from r.
// The first line establishes n as its value count, capped at the capacity;
// every following line supplies one more row until n rows are read.
//
// Errors: ErrParse, ErrShortRow, store errors, and reader errors (io.EOF
// included), each wrapped with the row number.
func (s *System) ReadMatrix(r LineReader) error {
	first, err := s.readValues(r, PromptMatrix, "row 0", s.capacity)
	if err != nil {
		return err
	}
	s.n = len(first)
	if err = s.newStore(); err != nil {
		return err
	}
	if err = s.setRow(0, first); err != nil {
		return err
	}
	for row := 1; row < s.n; row++ {
		label := fmt.Sprintf("row %d", row)
		vals, err := s.readValues(r, "", label, s.n)
		if err != nil {
			return err
		}
		if len(vals) < s.n {
			return fmt.Errorf("%s: got %d of %d: %w", label, len(vals), s.n, ErrShortRow)
		}
		if err = s.setRow(row, vals); err != nil {
			return err
		}
	}
	s.x = make([]float32, s.n)

	return nil
}

// ReadConstants reads b from a single line of n values.
func (s *System) ReadConstants(r LineReader) error {
	if s.Store() == nil {
		return fmt.Errorf("constants: %w", ErrNotReady)
	}
	vals, err := s.readValues(r, PromptConstants, "constants", s.n)
	if err != nil {
		return err
	}
	if len(vals) < s.n {
		return fmt.Errorf("constants: got %d of %d: %w", len(vals), s.n, ErrShortRow)
	}
	if !matrix.IsFinite(vals) {
		return fmt.Errorf("constants: %w", matrix.ErrNaNInf)
	}
	s.b = vals

	return nil
}

// CheckDominance runs the dominance test and warns through the sink when it
// fails. It never blocks solving.
func (s *System) CheckDominance() bool {
	ok := matrix.IsDiagonallyDominant(s.Store(), s.opts.dominance)
	if !ok {
		s.opts.sink.Warn(WarnNotDominant)
	}

	return ok
}

// Solve runs Gauss-Seidel from the current x, streaming the trace to the
// sink. The outcome stays available to Report and Result.
func (s *System) Solve() (gaussseidel.Result, error) {
	store := s.Store()
	if store == nil || (s.b == nil && s.n > 0) {
		return gaussseidel.Result{}, fmt.Errorf("solve: %w", ErrNotReady)
	}
	opts := append(append([]gaussseidel.Option(nil), s.opts.solverOpts...),
		gaussseidel.WithObserver(s.opts.sink.Iteration))
	s.result, s.solveErr = gaussseidel.Solve(store, s.b, s.x, opts...)

	return s.result, s.solveErr
}

// Result returns the outcome of the last Solve.
func (s *System) Result() (gaussseidel.Result, error) { return s.result, s.solveErr }

// Report hands the final A, b, x and n to the sink and returns the same value.
func (s *System) Report() Report {
	rep := Report{
		Kind:   s.kind,
		N:      s.n,
		B:      s.b,
		X:      s.x,
		Result: s.result,
		Err:    s.solveErr,
	}
	switch {
	case s.dense != nil:
		rep.A = s.dense.Rows()
	case s.sparse != nil:
		rep.Triplets = s.sparse.Triplets()
		if d, err := matrix.ToDense(s.sparse); err == nil {
			rep.A = d.Rows()
		}
	}
	s.opts.sink.Report(rep)

	return rep
}

// Run drives the whole session: matrix → dominance check → constants →
// solve → report. Input errors abort before solving; solver errors are
// returned after the report has been emitted.
func (s *System) Run(r LineReader) (gaussseidel.Result, error) {
	if err := s.ReadMatrix(r); err != nil {
		return gaussseidel.Result{}, err
	}
	s.CheckDominance()
	if err := s.ReadConstants(r); err != nil {
		return gaussseidel.Result{}, err
	}
	res, err := s.Solve()
	s.Report()

	return res, err
}

// readValues reads and parses one line, recording and reporting truncation.
func (s *System) readValues(r LineReader, prompt, label string, limit int) ([]float32, error) {
	line, err := r.ReadLine(prompt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	vals, dropped, err := ParseRow(line, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	if dropped > 0 {
		t := Truncation{Line: label, Kept: len(vals), Dropped: dropped}
		s.truncations = append(s.truncations, t)
		s.opts.sink.Warn(fmt.Sprintf(
			"%s: at most %d values are accepted; %d trailing value(s) were dropped.",
			label, limit, dropped))
	}

	return vals, nil
}

func (s *System) newStore() error {
	var err error
	if s.kind == KindSparse {
		s.sparse, err = matrix.NewSparse(s.n, s.opts.storeOpts...)
	} else {
		s.dense, err = matrix.NewDense(s.n, s.opts.storeOpts...)
	}

	return err
}

// setRow writes one row; sparse sessions skip zero coefficients.
func (s *System) setRow(row int, vals []float32) error {
	for col, v := range vals {
		var err error
		if s.kind == KindSparse {
			if v == 0 {
				continue
			}
			err = s.sparse.Add(row, col, v)
		} else {
			err = s.dense.Set(row, col, v)
		}
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
	}

	return nil
}

// IsInputError reports whether err came from reading or parsing input,
// including input that ended before the system was complete and lines too
// long to scan.
func IsInputError(err error) bool {
	return errors.Is(err, ErrParse) || errors.Is(err, ErrShortRow) ||
		errors.Is(err, io.EOF) || errors.Is(err, bufio.ErrTooLong) ||
		errors.Is(err, matrix.ErrNaNInf) || errors.Is(err, matrix.ErrCapacityExceeded)
}
