package system

import "errors"

var (
	// ErrParse reports a non-numeric token; the whole line is rejected.
	ErrParse = errors.New("system: malformed number")

	// ErrShortRow reports a line holding fewer than n values.
	ErrShortRow = errors.New("system: too few values on line")

	// ErrNotReady reports an out-of-order call, e.g. ReadConstants before ReadMatrix.
	ErrNotReady = errors.New("system: matrix has not been read")
)
