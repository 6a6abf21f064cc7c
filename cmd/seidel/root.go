package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seidel/gaussseidel"
	"github.com/katalvlaran/seidel/matrix"
	"github.com/katalvlaran/seidel/system"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

// Flag names, also the viper keys (SEIDEL_<NAME> in the environment).
const (
	flagFormat    = "format"
	flagTolerance = "tolerance"
	flagMaxIter   = "max-iter"
	flagCapacity  = "capacity"
	flagDominance = "dominance"
	flagPlot      = "plot"
	flagLogLevel  = "log-level"
)

type solveOpts struct {
	format    string
	tolerance float64
	maxIter   int
	capacity  int
	dominance string
	plot      string
	logLevel  string
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seidel",
		Short:         "Solve small linear systems with Gauss-Seidel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.AddCommand(
		newSolveCommand(),
		newVersionCommand(),
	)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seidel version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

func newSolveCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Read A row by row and then b from stdin, and solve A·x = b",
		Long: `Read the coefficient matrix A one comma-separated row per line, then the
constants vector b on one line, and solve A·x = b with Gauss-Seidel.

The first row fixes the number of unknowns (at most --capacity). The
dominance pre-check only warns; solving always proceeds. The command exits
non-zero on malformed input (2) and when the solver reports a zero
diagonal, divergence or non-convergence (3).

Every flag can also be set from the environment, e.g. SEIDEL_MAX_ITER=50.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadSolveOpts(v)
			if err != nil {
				return err
			}
			return runSolve(cmd, opts)
		},
	}

	addSolveFlags(cmd.Flags())
	v.SetEnvPrefix("SEIDEL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}

	return cmd
}

func addSolveFlags(fs *pflag.FlagSet) {
	fs.String(flagFormat, system.KindDense.String(), "coefficient storage: dense or sparse")
	fs.Float64(flagTolerance, gaussseidel.DefaultTolerance, "residual threshold that ends iteration")
	fs.Int(flagMaxIter, gaussseidel.DefaultMaxIterations, "maximum number of sweeps")
	fs.Int(flagCapacity, matrix.DefaultCapacity, "maximum number of unknowns")
	fs.String(flagDominance, matrix.DefaultDominanceMode.String(), "dominance test: absolute or signed")
	fs.String(flagPlot, "", "write the residual trace as a PNG to this path")
	fs.String(flagLogLevel, logrus.InfoLevel.String(), "log level (debug shows every sweep)")
}

func loadSolveOpts(v *viper.Viper) (solveOpts, error) {
	opts := solveOpts{
		format:    v.GetString(flagFormat),
		tolerance: v.GetFloat64(flagTolerance),
		maxIter:   v.GetInt(flagMaxIter),
		capacity:  v.GetInt(flagCapacity),
		dominance: v.GetString(flagDominance),
		plot:      v.GetString(flagPlot),
		logLevel:  v.GetString(flagLogLevel),
	}
	if math.IsNaN(opts.tolerance) || math.IsInf(opts.tolerance, 0) || opts.tolerance < 0 {
		return opts, fmt.Errorf("--%s must be finite and >= 0, got %g", flagTolerance, opts.tolerance)
	}
	if opts.maxIter <= 0 {
		return opts, fmt.Errorf("--%s must be > 0, got %d", flagMaxIter, opts.maxIter)
	}
	if opts.capacity <= 0 {
		return opts, fmt.Errorf("--%s must be > 0, got %d", flagCapacity, opts.capacity)
	}

	return opts, nil
}

func parseKind(s string) (system.StoreKind, error) {
	switch strings.ToLower(s) {
	case system.KindDense.String():
		return system.KindDense, nil
	case system.KindSparse.String():
		return system.KindSparse, nil
	}
	return 0, fmt.Errorf("unknown --%s %q (want dense or sparse)", flagFormat, s)
}

func parseDominance(s string) (matrix.DominanceMode, error) {
	switch strings.ToLower(s) {
	case matrix.DominanceAbsolute.String():
		return matrix.DominanceAbsolute, nil
	case matrix.DominanceSigned.String():
		return matrix.DominanceSigned, nil
	}
	return 0, fmt.Errorf("unknown --%s %q (want absolute or signed)", flagDominance, s)
}

func runSolve(cmd *cobra.Command, opts solveOpts) error {
	kind, err := parseKind(opts.format)
	if err != nil {
		return err
	}
	mode, err := parseDominance(opts.dominance)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)

	sink := newLogSink(log, cmd.OutOrStdout())
	sys, err := system.New(kind,
		system.WithSink(sink),
		system.WithDominanceMode(mode),
		system.WithStoreOptions(matrix.WithCapacity(opts.capacity)),
		system.WithSolverOptions(
			gaussseidel.WithTolerance(opts.tolerance),
			gaussseidel.WithMaxIterations(opts.maxIter),
		),
	)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"format":    kind,
		"capacity":  opts.capacity,
		"tolerance": opts.tolerance,
		"maxIter":   opts.maxIter,
	}).Debug("starting solve session")

	reader := system.NewScannerReader(cmd.InOrStdin(), cmd.ErrOrStderr())
	res, solveErr := sys.Run(reader)

	if opts.plot != "" && len(sink.trace) > 0 {
		if err := writeResidualPlot(opts.plot, sink.trace); err != nil {
			log.WithError(err).WithField("path", opts.plot).Error("cannot write residual plot")
		} else {
			log.WithField("path", opts.plot).Info("wrote residual plot")
		}
	}
	if solveErr != nil {
		return solveErr
	}

	log.WithFields(logrus.Fields{
		"iterations": res.Iterations,
		"residual":   res.Residual,
	}).Info("converged")
	return nil
}
