package numtheory

import "math/big"

// Observer receives notifications at round and candidate boundaries of the
// primality tester. It exists so that tracing, logging, and metrics stay
// outside the core witness loop; the tester never emits output itself.
//
// Implementations must be safe for concurrent use: the concurrent tester
// invokes the observer from multiple worker goroutines.
type Observer interface {
	// RoundCompleted is invoked after each Miller-Rabin round. The round
	// index is the per-worker sequence number, and passed reports whether
	// the witness failed to prove n composite.
	RoundCompleted(n *big.Int, round int, passed bool)

	// CandidateTested is invoked once per candidate with the final verdict.
	CandidateTested(n *big.Int, probablyPrime bool)
}

// NopObserver is the default Observer; it discards all notifications.
type NopObserver struct{}

// RoundCompleted discards the notification.
func (NopObserver) RoundCompleted(*big.Int, int, bool) {}

// CandidateTested discards the notification.
func (NopObserver) CandidateTested(*big.Int, bool) {}
