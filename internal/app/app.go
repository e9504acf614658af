// Package app wires configuration, logging, metrics, and the numtheory
// library into the rcrypt command-line application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/ZoeyR/rcrypt/internal/config"
	apperrors "github.com/ZoeyR/rcrypt/internal/errors"
	"github.com/ZoeyR/rcrypt/internal/logging"
	"github.com/ZoeyR/rcrypt/internal/metrics"
	"github.com/ZoeyR/rcrypt/numtheory"
)

// Application represents one rcrypt invocation.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	logger logging.Logger
	tester *numtheory.Tester
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "rcrypt"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the configured operation and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	a.logger = logging.NewDefaultLogger()
	a.tester = a.buildTester()

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch a.Config.Op {
	case config.OpIsPrime:
		return a.runIsPrime(ctx, out)
	case config.OpNextPrime:
		return a.runNextPrime(ctx, out)
	case config.OpGenPrime:
		return a.runGenPrime(ctx, out)
	case config.OpModExp:
		return a.runModExp(out)
	case config.OpGCDExt:
		return a.runGCDExt(out)
	default:
		// Validate rejects unknown operations before Run is reached.
		a.logger.Error("unknown operation", nil, logging.String("op", a.Config.Op))
		return apperrors.ExitErrorConfig
	}
}

// buildTester assembles the primality tester with the configured worker
// count and an observer stack: Prometheus counters always, debug logging of
// rounds when verbose.
func (a *Application) buildTester() *numtheory.Tester {
	observers := []numtheory.Observer{
		metrics.NewPrimalityMetrics(prometheus.NewRegistry()),
	}
	if a.Config.Verbose {
		observers = append(observers, logging.NewRoundObserver(a.logger))
	}
	return &numtheory.Tester{
		Observer: multiObserver(observers),
		Rounds:   a.Config.Rounds,
		Workers:  a.Config.Workers,
	}
}

// exitCode maps an operation error to a process exit code, logging it.
func (a *Application) exitCode(err error) int {
	var invalid numtheory.InvalidArgumentError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		a.logger.Error("operation timed out", apperrors.TimeoutError{
			Operation: a.Config.Op, Limit: a.Config.Timeout,
		})
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		a.logger.Error("operation canceled", err)
		return apperrors.ExitErrorCanceled
	case errors.As(err, &invalid):
		a.logger.Error("invalid argument", err)
		return apperrors.ExitErrorConfig
	default:
		a.logger.Error("operation failed", apperrors.ComputationError{Cause: err})
		return apperrors.ExitErrorGeneric
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
