package app

import (
	"context"
	"io"
	"time"

	"github.com/ZoeyR/rcrypt/internal/cli"
	"github.com/ZoeyR/rcrypt/internal/config"
	apperrors "github.com/ZoeyR/rcrypt/internal/errors"
	"github.com/ZoeyR/rcrypt/internal/logging"
	"github.com/ZoeyR/rcrypt/numtheory"
)

// presenter builds the result presenter for the configured output mode.
func (a *Application) presenter() cli.Presenter {
	return cli.Presenter{Quiet: a.Config.Quiet}
}

// runIsPrime tests the configured candidate for primality.
func (a *Application) runIsPrime(ctx context.Context, out io.Writer) int {
	n := config.MustInt(a.Config.N)

	start := time.Now()
	var verdict bool
	var err error
	if a.Config.Workers > 1 {
		verdict, err = a.tester.IsPrimeConcurrent(ctx, n, a.Config.Rounds, a.Config.Workers)
	} else {
		verdict, err = a.tester.IsPrime(ctx, n, a.Config.Rounds)
	}
	if err != nil {
		return a.exitCode(err)
	}

	a.logger.Info("primality test finished",
		logging.Int("bits", n.BitLen()),
		logging.Int("rounds", a.Config.Rounds),
		logging.Int("workers", a.Config.Workers),
		logging.Bool("probably_prime", verdict))
	a.presenter().PresentVerdict(out, n, verdict, a.Config.Rounds, time.Since(start))
	return apperrors.ExitSuccess
}

// runNextPrime searches for the smallest probable prime at or above the
// configured candidate.
func (a *Application) runNextPrime(ctx context.Context, out io.Writer) int {
	n := config.MustInt(a.Config.N)

	stopProgress := a.startProgress(out, "searching for next prime")
	start := time.Now()
	p, err := a.tester.NextPrime(ctx, n)
	elapsed := time.Since(start)
	stopProgress()

	if err != nil {
		return a.exitCode(err)
	}
	a.logger.Info("prime found",
		logging.Int("bits", p.BitLen()),
		logging.Float64("seconds", elapsed.Seconds()))
	a.presenter().PresentInt(out, "nextprime", p, elapsed)
	return apperrors.ExitSuccess
}

// runGenPrime generates a random probable prime of the configured bit length.
func (a *Application) runGenPrime(ctx context.Context, out io.Writer) int {
	stopProgress := a.startProgress(out, "generating prime")
	start := time.Now()
	p, err := a.tester.RandomPrime(ctx, a.Config.Bits)
	elapsed := time.Since(start)
	stopProgress()

	if err != nil {
		return a.exitCode(err)
	}
	a.logger.Info("prime generated",
		logging.Int("bits", p.BitLen()),
		logging.Float64("seconds", elapsed.Seconds()))
	a.presenter().PresentInt(out, "prime", p, elapsed)
	return apperrors.ExitSuccess
}

// runModExp computes base^exp mod m.
func (a *Application) runModExp(out io.Writer) int {
	base := config.MustInt(a.Config.Base)
	exp := config.MustInt(a.Config.Exp)
	mod := config.MustInt(a.Config.Mod)

	start := time.Now()
	result, err := numtheory.ModExp(base, exp, mod)
	if err != nil {
		return a.exitCode(err)
	}
	a.presenter().PresentInt(out, "modexp", result, time.Since(start))
	return apperrors.ExitSuccess
}

// runGCDExt computes the Bézout triple for the configured operands.
func (a *Application) runGCDExt(out io.Writer) int {
	opA := config.MustInt(a.Config.A)
	opB := config.MustInt(a.Config.B)

	start := time.Now()
	g, x, y := numtheory.ExtendedGCD(opA, opB)
	a.presenter().PresentBezout(out, g, x, y, time.Since(start))
	return apperrors.ExitSuccess
}

// startProgress starts a spinner for long-running searches unless quiet mode
// is active. The returned function stops it.
func (a *Application) startProgress(out io.Writer, label string) func() {
	if a.Config.Quiet {
		return func() {}
	}
	progress := cli.NewSearchProgress(cli.NewTerminalSpinner(out), label)
	progress.Start()
	return progress.Stop
}
