// Package cli renders rcrypt results and progress for the terminal.
package cli

import (
	"fmt"
	"io"
	"math/big"
	"time"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatBigInt renders v in decimal, truncating the middle of very large
// values: the first and last DisplayEdges digits are kept with the omitted
// digit count in between.
func FormatBigInt(v *big.Int) string {
	s := v.String()
	digits := len(s)
	if v.Sign() < 0 {
		digits--
	}
	if digits <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...(%d digits omitted)...%s",
		s[:DisplayEdges], digits-2*DisplayEdges, s[len(s)-DisplayEdges:])
}

// Presenter writes operation results to the terminal. In quiet mode only the
// bare result value is printed, one token per line, for script consumption.
type Presenter struct {
	Quiet bool
}

// PresentVerdict prints the outcome of a primality test.
func (p Presenter) PresentVerdict(out io.Writer, n *big.Int, probablyPrime bool, rounds int, d time.Duration) {
	if p.Quiet {
		fmt.Fprintln(out, probablyPrime)
		return
	}
	verdict := "composite"
	if probablyPrime {
		verdict = "probably prime"
	}
	fmt.Fprintf(out, "%s is %s (%d rounds, %s)\n",
		FormatBigInt(n), verdict, rounds, FormatExecutionDuration(d))
}

// PresentInt prints a single integer result under the given label.
func (p Presenter) PresentInt(out io.Writer, label string, v *big.Int, d time.Duration) {
	if p.Quiet {
		fmt.Fprintln(out, v.String())
		return
	}
	fmt.Fprintf(out, "%s = %s\n", label, FormatBigInt(v))
	fmt.Fprintf(out, "Computed in %s\n", FormatExecutionDuration(d))
}

// PresentBezout prints an extended-GCD triple g = a·x + b·y.
func (p Presenter) PresentBezout(out io.Writer, g, x, y *big.Int, d time.Duration) {
	if p.Quiet {
		fmt.Fprintln(out, g.String())
		fmt.Fprintln(out, x.String())
		fmt.Fprintln(out, y.String())
		return
	}
	fmt.Fprintf(out, "g = %s\n", FormatBigInt(g))
	fmt.Fprintf(out, "x = %s\n", FormatBigInt(x))
	fmt.Fprintf(out, "y = %s\n", FormatBigInt(y))
	fmt.Fprintf(out, "Computed in %s\n", FormatExecutionDuration(d))
}
