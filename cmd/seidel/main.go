// Package main is the seidel command: it reads a small linear system from
// stdin and solves it with Gauss-Seidel.
package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/seidel/gaussseidel"
	"github.com/katalvlaran/seidel/system"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitInput     = 2
	exitNumerical = 3
)

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("seidel failed")
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case system.IsInputError(err):
		return exitInput
	case errors.Is(err, gaussseidel.ErrZeroDiagonal),
		errors.Is(err, gaussseidel.ErrDiverged),
		errors.Is(err, gaussseidel.ErrNotConverged):
		return exitNumerical
	default:
		return exitFailure
	}
}
