package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/big"
	"strings"
	"testing"
	"time"

	apperrors "github.com/ZoeyR/rcrypt/internal/errors"
)

// run builds an application from full argv and executes it, capturing stdout.
func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	application, err := New(append([]string{"rcrypt"}, args...), io.Discard)
	if err != nil {
		t.Fatalf("New(%v) returned error: %v", args, err)
	}
	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	return code, out.String()
}

func TestRun_IsPrime(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"prime", []string{"-op", "isprime", "-n", "97", "-q"}, "true\n"},
		{"composite", []string{"-op", "isprime", "-n", "100", "-q"}, "false\n"},
		{"concurrent prime", []string{"-op", "isprime", "-n", "7919", "-workers", "4", "-q"}, "true\n"},
		{
			"large prime",
			[]string{"-op", "isprime", "-n",
				"4829837983753984028472098472089547098728675098723407520875297", "-q"},
			"true\n",
		},
		{
			"large composite",
			[]string{"-op", "isprime", "-n",
				"359709793871987301975981798740165298740176567105918720469720137416098423", "-q"},
			"false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := run(t, tt.args...)
			if code != apperrors.ExitSuccess {
				t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRun_NextPrime(t *testing.T) {
	code, out := run(t, "-op", "nextprime", "-n", "90", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if out != "97\n" {
		t.Errorf("output = %q, want %q", out, "97\n")
	}
}

func TestRun_GenPrime(t *testing.T) {
	code, out := run(t, "-op", "genprime", "-bits", "64", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if len(strings.TrimSpace(out)) == 0 {
		t.Error("genprime produced no output")
	}
}

func TestRun_ModExp(t *testing.T) {
	code, out := run(t, "-op", "modexp", "-base", "4", "-exp", "13", "-mod", "497", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if out != "445\n" {
		t.Errorf("output = %q, want %q", out, "445\n")
	}
}

func TestRun_GCDExt(t *testing.T) {
	code, out := run(t, "-op", "gcdext", "-a", "240", "-b", "46", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if out != "2\n-9\n47\n" {
		t.Errorf("output = %q, want %q", out, "2\n-9\n47\n")
	}
}

func TestRun_ModExpInvalidModulus(t *testing.T) {
	code, _ := run(t, "-op", "modexp", "-base", "4", "-exp", "13", "-mod", "0", "-q")
	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
}

func TestRun_Timeout(t *testing.T) {
	// A candidate just below a large prime gap keeps the search busy long
	// enough for a 1ns budget to expire deterministically.
	application, err := New([]string{"rcrypt",
		"-op", "nextprime", "-n",
		"4829837983753984028472098472089547098728675098723407520875258",
		"-timeout", "1ns", "-q"}, io.Discard)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestRun_ExternalCancellation(t *testing.T) {
	// A 2048-bit starting point keeps the search running well past the
	// cancellation below.
	start := new(big.Int).Lsh(big.NewInt(1), 2048)
	application, err := New([]string{"rcrypt",
		"-op", "nextprime", "-n", start.String(), "-q"},
		io.Discard)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	var out bytes.Buffer
	if code := application.Run(ctx, &out); code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New([]string{"rcrypt", "-op", "isprime"}, io.Discard)
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestNew_HelpFlag(t *testing.T) {
	_, err := New([]string{"rcrypt", "--help"}, io.Discard)
	if !IsHelpError(err) {
		t.Errorf("expected help error, got %v", err)
	}
}
