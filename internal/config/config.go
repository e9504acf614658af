// Package config defines the rcrypt CLI configuration and its resolution
// chain: command-line flags take priority over RCRYPT_-prefixed environment
// variables, which take priority over built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"time"

	apperrors "github.com/ZoeyR/rcrypt/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "RCRYPT_"

// Operation names accepted by the -op flag.
const (
	OpIsPrime   = "isprime"
	OpNextPrime = "nextprime"
	OpGenPrime  = "genprime"
	OpModExp    = "modexp"
	OpGCDExt    = "gcdext"
)

// DefaultTimeout bounds a single CLI invocation. Prime searches have no
// intrinsic upper bound, so the CLI always carries a deadline.
const DefaultTimeout = 5 * time.Minute

// DefaultRounds is the Miller-Rabin round count used when -rounds is not
// given. It matches numtheory.DefaultRounds.
const DefaultRounds = 40

// AppConfig holds the full configuration of one rcrypt invocation.
type AppConfig struct {
	// Op selects the operation to run (see the Op* constants).
	Op string

	// N is the candidate for isprime and nextprime, in decimal.
	N string
	// Base, Exp, Mod are the modexp operands, in decimal.
	Base, Exp, Mod string
	// A, B are the gcdext operands, in decimal (may be negative).
	A, B string

	// Bits is the bit length for genprime.
	Bits int
	// Rounds is the Miller-Rabin round count.
	Rounds int
	// Workers is the concurrent tester's worker count; 1 selects the
	// sequential tester.
	Workers int

	// Timeout bounds the whole invocation.
	Timeout time.Duration

	// Quiet suppresses everything except the bare result.
	Quiet bool
	// Verbose enables debug-level logging of round outcomes.
	Verbose bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set explicitly, and
// validates the result.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Rounds:  DefaultRounds,
		Workers: EstimateWorkerCount(),
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Op, "op", "", "operation: isprime | nextprime | genprime | modexp | gcdext")
	fs.StringVar(&cfg.N, "n", "", "candidate integer (decimal) for isprime/nextprime")
	fs.StringVar(&cfg.Base, "base", "", "modexp base (decimal)")
	fs.StringVar(&cfg.Exp, "exp", "", "modexp exponent (decimal, non-negative)")
	fs.StringVar(&cfg.Mod, "mod", "", "modexp modulus (decimal, positive)")
	fs.StringVar(&cfg.A, "a", "", "gcdext first operand (decimal)")
	fs.StringVar(&cfg.B, "b", "", "gcdext second operand (decimal)")
	fs.IntVar(&cfg.Bits, "bits", 0, "bit length for genprime")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Miller-Rabin rounds per candidate")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent primality workers")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall operation timeout")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the result")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the result (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "log individual test rounds")
	fs.BoolVar(&cfg.Verbose, "v", false, "log individual test rounds (shorthand)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency and per-operation requirements.
func (c AppConfig) Validate() error {
	if c.Rounds < 1 {
		return apperrors.NewConfigError("-rounds must be at least 1, got %d", c.Rounds)
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("-workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("-timeout must be positive, got %s", c.Timeout)
	}

	switch c.Op {
	case OpIsPrime, OpNextPrime:
		return requireIntegers(field{"-n", c.N})
	case OpGenPrime:
		if c.Bits < 2 {
			return apperrors.NewConfigError("-bits must be at least 2, got %d", c.Bits)
		}
		return nil
	case OpModExp:
		return requireIntegers(field{"-base", c.Base}, field{"-exp", c.Exp}, field{"-mod", c.Mod})
	case OpGCDExt:
		return requireIntegers(field{"-a", c.A}, field{"-b", c.B})
	case "":
		return apperrors.NewConfigError("missing -op (isprime | nextprime | genprime | modexp | gcdext)")
	default:
		return apperrors.NewConfigError("unknown operation %q", c.Op)
	}
}

type field struct {
	flag  string
	value string
}

// requireIntegers verifies that each named flag was given a valid decimal
// integer.
func requireIntegers(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return apperrors.NewConfigError("missing required flag %s", f.flag)
		}
		if _, ok := new(big.Int).SetString(f.value, 10); !ok {
			return apperrors.NewConfigError("%s: %q is not a decimal integer", f.flag, f.value)
		}
	}
	return nil
}

// MustInt parses a decimal string already checked by Validate. It panics on
// malformed input, which would indicate a bypassed validation.
func MustInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("config: %q is not a decimal integer", s))
	}
	return v
}
