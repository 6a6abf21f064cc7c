package system

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/seidel/gaussseidel"
	"github.com/katalvlaran/seidel/matrix"
)

// LineReader is the input collaborator: given a prompt, it returns one line
// of comma-separated reals (without the trailing newline).
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Sink is the output collaborator of a session.
type Sink interface {
	// Warn receives one-line warnings (dominance failure, truncation).
	Warn(msg string)
	// Iteration receives the per-sweep trace while solving.
	Iteration(iter int, residual float32)
	// Report receives the final state once the solver has returned.
	Report(r Report)
}

// Truncation records values dropped from an over-long input line.
type Truncation struct {
	Line    string // "row 0", "row 2", "constants"
	Kept    int
	Dropped int
}

// Report is the final state handed to a Sink.
type Report struct {
	Kind     StoreKind
	N        int
	A        [][]float32      // logical n×n block
	Triplets []matrix.Triplet // sparse sessions only
	B        []float32
	X        []float32
	Result   gaussseidel.Result
	Err      error // solver error, nil on convergence
}

// ScannerReader reads lines from an io.Reader and writes prompts to an io.Writer.
type ScannerReader struct {
	sc      *bufio.Scanner
	prompts io.Writer
}

// NewScannerReader returns a LineReader over in; prompts may be nil.
func NewScannerReader(in io.Reader, prompts io.Writer) *ScannerReader {
	if prompts == nil {
		prompts = io.Discard
	}

	return &ScannerReader{sc: bufio.NewScanner(in), prompts: prompts}
}

// ReadLine prints prompt (when non-empty) and returns the next line.
// io.EOF is returned when the input is exhausted.
func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(r.prompts, prompt)
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return r.sc.Text(), nil
}

// LinesReader serves a fixed list of lines, ignoring prompts.
type LinesReader struct {
	lines []string
	next  int
}

// NewLinesReader returns a LineReader over lines.
func NewLinesReader(lines ...string) *LinesReader {
	return &LinesReader{lines: lines}
}

// ReadLine returns the next line or io.EOF.
func (r *LinesReader) ReadLine(string) (string, error) {
	if r.next >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.next]
	r.next++

	return line, nil
}

// WriterSink prints warnings, the trace and the final vectors as plain text.
type WriterSink struct {
	W io.Writer
}

// Warn prints msg on its own line.
func (s WriterSink) Warn(msg string) { fmt.Fprintln(s.W, msg) }

// Iteration prints "itr = <i> - err = <residual>".
func (s WriterSink) Iteration(iter int, residual float32) {
	fmt.Fprintf(s.W, "itr = %d - err = %g\n", iter, residual)
}

// Report prints A, b, x and n.
func (s WriterSink) Report(r Report) {
	fmt.Fprintf(s.W, "A = %s\n", formatRows(r.A))
	fmt.Fprintf(s.W, "b = %s\n", formatVec(r.B))
	fmt.Fprintf(s.W, "x = %s\n", formatVec(r.X))
	fmt.Fprintf(s.W, "n = %d\n", r.N)
	fmt.Fprintf(s.W, "status = %s after %d iteration(s), residual %g\n",
		r.Result.Status, r.Result.Iterations, r.Result.Residual)
}

type nopSink struct{}

func (nopSink) Warn(string)            {}
func (nopSink) Iteration(int, float32) {}
func (nopSink) Report(Report)          {}

func formatVec(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%g", f)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatRows(rows [][]float32) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = formatVec(r)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
