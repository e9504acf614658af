package numtheory

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// DefaultRounds is the number of Miller-Rabin rounds used by the prime search
// when the caller does not specify one. 40 rounds bound the false-positive
// probability by 4^-40 ≈ 8.3e-25, comfortably below the error rates of the
// hardware the result runs on, without wasting CPU on hundreds of rounds.
const DefaultRounds = 40

// Tester runs probabilistic primality tests. The zero value is ready to use:
// witnesses come from crypto/rand, no observer is attached, and searches run
// sequentially with DefaultRounds rounds per candidate.
type Tester struct {
	// Rand is the source of witness randomness. Nil means crypto/rand.Reader.
	// A non-nil custom source is serialized behind a mutex when workers share
	// it, so deterministic sources remain usable in tests.
	Rand io.Reader

	// Observer is notified at round and candidate boundaries. Nil means no
	// notifications.
	Observer Observer

	// Rounds is the per-candidate round count used by NextPrime and
	// RandomPrime. Zero means DefaultRounds.
	Rounds int

	// Workers sets the number of concurrent workers NextPrime and RandomPrime
	// use per candidate. Values below 2 select the sequential tester.
	Workers int
}

// decomposition holds the derived values of a candidate n: n-1 = d·2^s with
// d odd, plus the bounds needed by the witness loop. It is computed once per
// candidate and shared read-only across all rounds and workers.
type decomposition struct {
	nMinus1 *big.Int // n - 1, compared against by every squaring step
	d       *big.Int // odd cofactor of n - 1
	s       uint     // number of trailing zero bits of n - 1
	span    *big.Int // n - 3, the width of the witness range [2, n-2]
}

// decompose factors n-1 = d·2^s. n must be odd and greater than 3.
func decompose(n *big.Int) decomposition {
	nMinus1 := new(big.Int).Sub(n, one)
	s := nMinus1.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinus1, s)
	span := new(big.Int).Sub(n, three)
	return decomposition{nMinus1: nMinus1, d: d, s: s, span: span}
}

// IsPrime reports whether n is probably prime after rounds rounds of
// Miller-Rabin. The false-positive probability is at most 4^-rounds; rounds
// must be chosen high enough for the security context (see DefaultRounds).
//
// 2 and 3 are prime; values below 2 and even values are composite and are
// rejected before any witness is sampled. The test short-circuits as soon as
// one witness proves n composite.
func (t *Tester) IsPrime(ctx context.Context, n *big.Int, rounds int) (bool, error) {
	if err := validateCandidate(n, rounds); err != nil {
		return false, err
	}
	if verdict, decided := trivialPrimality(n); decided {
		t.observer().CandidateTested(n, verdict)
		return verdict, nil
	}

	dec := decompose(n)
	verdict, err := t.runRounds(ctx, n, dec, rounds, t.rand())
	if err != nil {
		return false, err
	}
	t.observer().CandidateTested(n, verdict)
	return verdict, nil
}

// validateCandidate rejects nil candidates and non-positive round counts
// before any computation begins.
func validateCandidate(n *big.Int, rounds int) error {
	if n == nil {
		return InvalidArgumentError{Arg: "n", Reason: "must not be nil"}
	}
	if rounds < 1 {
		return InvalidArgumentError{Arg: "rounds", Reason: "must be at least 1"}
	}
	return nil
}

// trivialPrimality decides primality for candidates that never reach the
// witness loop: n < 2 and even n > 2 are composite, 2 and 3 are prime.
// The second return value reports whether a decision was made.
func trivialPrimality(n *big.Int) (verdict, decided bool) {
	if n.Cmp(two) < 0 {
		return false, true
	}
	if n.Cmp(three) <= 0 {
		return true, true
	}
	if n.Bit(0) == 0 {
		return false, true
	}
	return false, false
}

// runRounds executes the given number of Miller-Rabin rounds against the
// shared decomposition of n, sampling one independent witness per round from
// rng. It returns false as soon as a witness proves n composite.
func (t *Tester) runRounds(ctx context.Context, n *big.Int, dec decomposition, rounds int, rng io.Reader) (bool, error) {
	x := new(big.Int)
	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		a, err := sampleWitness(rng, dec.span)
		if err != nil {
			return false, fmt.Errorf("sampling witness: %w", err)
		}
		passed := witnessRound(x, a, n, dec)
		t.observer().RoundCompleted(n, round, passed)
		if !passed {
			return false, nil
		}
	}
	return true, nil
}

// witnessRound runs one Miller-Rabin round with witness a against the
// decomposition n-1 = d·2^s. It returns false iff a proves n composite:
// compute x = a^d mod n; the round passes when x is 1 or n-1, or when one of
// up to s-1 subsequent squarings reaches n-1. Exhausting the squarings
// without reaching n-1 is a compositeness proof.
func witnessRound(x, a, n *big.Int, dec decomposition) bool {
	modExp(x, a, dec.d, n)
	if x.Cmp(one) == 0 || x.Cmp(dec.nMinus1) == 0 {
		return true
	}
	for r := uint(1); r < dec.s; r++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(dec.nMinus1) == 0 {
			return true
		}
	}
	return false
}

// sampleWitness draws a uniform witness a in [2, n-2], where span = n-3.
func sampleWitness(rng io.Reader, span *big.Int) (*big.Int, error) {
	a, err := rand.Int(rng, span)
	if err != nil {
		return nil, err
	}
	return a.Add(a, two), nil
}

// rand returns the configured random source, defaulting to crypto/rand.
func (t *Tester) rand() io.Reader {
	if t.Rand == nil {
		return rand.Reader
	}
	return t.Rand
}

// observer returns the configured observer, defaulting to NopObserver.
func (t *Tester) observer() Observer {
	if t.Observer == nil {
		return NopObserver{}
	}
	return t.Observer
}

// rounds returns the configured search round count, defaulting to
// DefaultRounds.
func (t *Tester) rounds() int {
	if t.Rounds < 1 {
		return DefaultRounds
	}
	return t.Rounds
}

// IsPrime reports whether n is probably prime after rounds rounds of
// Miller-Rabin, using crypto/rand for witnesses. See Tester.IsPrime.
func IsPrime(ctx context.Context, n *big.Int, rounds int) (bool, error) {
	return defaultTester.IsPrime(ctx, n, rounds)
}

var defaultTester = &Tester{}
