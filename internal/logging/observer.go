package logging

import (
	"math/big"

	"github.com/ZoeyR/rcrypt/numtheory"
)

// RoundObserver adapts a Logger to numtheory.Observer, logging round and
// candidate boundaries at debug level. Candidates are logged by bit length
// rather than value to keep log lines bounded.
type RoundObserver struct {
	logger Logger
}

// NewRoundObserver creates an observer that logs to the given Logger.
func NewRoundObserver(logger Logger) *RoundObserver {
	return &RoundObserver{logger: logger}
}

var _ numtheory.Observer = (*RoundObserver)(nil)

// RoundCompleted logs the outcome of one Miller-Rabin round.
func (o *RoundObserver) RoundCompleted(n *big.Int, round int, passed bool) {
	o.logger.Debug("miller-rabin round",
		Int("bits", n.BitLen()),
		Int("round", round),
		Bool("passed", passed))
}

// CandidateTested logs the final verdict for a candidate.
func (o *RoundObserver) CandidateTested(n *big.Int, probablyPrime bool) {
	o.logger.Debug("candidate tested",
		Int("bits", n.BitLen()),
		Bool("probably_prime", probablyPrime))
}
