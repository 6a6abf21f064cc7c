package main

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/seidel/system"
)

// tracePoint is one (iteration, residual) pair kept for plotting.
type tracePoint struct {
	iter     int
	residual float32
}

// logSink routes warnings and the sweep trace to logrus and prints the final
// vectors to out.
type logSink struct {
	log   logrus.FieldLogger
	out   system.WriterSink
	trace []tracePoint
}

func newLogSink(log logrus.FieldLogger, out io.Writer) *logSink {
	return &logSink{log: log, out: system.WriterSink{W: out}}
}

func (s *logSink) Warn(msg string) {
	s.log.Warn(msg)
}

func (s *logSink) Iteration(iter int, residual float32) {
	s.trace = append(s.trace, tracePoint{iter: iter, residual: residual})
	s.log.WithFields(logrus.Fields{
		"iteration": iter,
		"residual":  residual,
	}).Debug("sweep")
}

func (s *logSink) Report(r system.Report) {
	entry := s.log.WithFields(logrus.Fields{
		"n":          r.N,
		"format":     r.Kind,
		"status":     r.Result.Status,
		"iterations": r.Result.Iterations,
	})
	if r.Err != nil {
		entry.WithError(r.Err).Warn("solver did not converge cleanly")
	} else {
		entry.Debug("solver finished")
	}
	s.out.Report(r)
}
