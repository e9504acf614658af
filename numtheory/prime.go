package numtheory

import (
	"context"
	"io"
	"math/big"
	"sync"
)

// smallPrimeBound caps the sieve used for trial division during candidate
// search. Divisibility by a prime below this bound disqualifies a candidate
// without running the full witness loop.
const smallPrimeBound = 1 << 10

// thePrimes holds the odd primes below smallPrimeBound. Sieving them once on
// first use avoids paying for the sieve in programs that never search.
var (
	thePrimes   []uint64
	sievePrimes sync.Once
)

// oddPrimesBelow sieves the odd primes below the given bound.
func oddPrimesBelow(bound int) []uint64 {
	composite := make([]bool, bound)
	for p := 3; p*p < bound; p += 2 {
		if composite[p] {
			continue
		}
		for i := p * p; i < bound; i += p {
			composite[i] = true
		}
	}
	var out []uint64
	for p := 3; p < bound; p += 2 {
		if !composite[p] {
			out = append(out, uint64(p))
		}
	}
	return out
}

// hasSmallFactor reports whether odd p > 1 is divisible by an odd prime below
// smallPrimeBound other than itself. It is a cheap pre-filter: most composite
// candidates fall here before any modular exponentiation runs.
func hasSmallFactor(p *big.Int) bool {
	sievePrimes.Do(func() {
		thePrimes = oddPrimesBelow(smallPrimeBound)
	})
	rem := new(big.Int)
	for _, q := range thePrimes {
		rem.SetUint64(q)
		rem.Mod(p, rem)
		if rem.Sign() == 0 {
			// p equal to q is the prime itself, not a factor hit.
			return !(p.IsUint64() && p.Uint64() == q)
		}
	}
	return false
}

// NextPrime returns the smallest probable prime p ≥ n: when n itself passes
// the primality test it is returned unchanged (inclusive policy; callers that
// need a strictly larger prime should pass n+1). Candidates are normalized to
// odd and advanced by 2; divisibility by a small prime skips a candidate
// before the witness loop runs. Each surviving candidate is tested with the
// tester's configured round count, concurrently across Workers workers when
// Workers is greater than 1.
//
// No upper bound is enforced: the search runs until a prime is found or ctx
// is cancelled. Prime gaps keep this fast for random candidates, but
// termination is not guaranteed for adversarial inputs, so long searches
// should carry a deadline.
func (t *Tester) NextPrime(ctx context.Context, n *big.Int) (*big.Int, error) {
	if n == nil {
		return nil, InvalidArgumentError{Arg: "n", Reason: "must not be nil"}
	}
	p := new(big.Int).Set(n)
	if p.Cmp(two) <= 0 {
		return big.NewInt(2), nil
	}
	if p.Bit(0) == 0 {
		p.Add(p, one)
	}

	rounds := t.rounds()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !hasSmallFactor(p) {
			prime, err := t.test(ctx, p, rounds)
			if err != nil {
				return nil, err
			}
			if prime {
				return p, nil
			}
		}
		p.Add(p, two)
	}
}

// test dispatches to the sequential or concurrent tester depending on the
// configured worker count.
func (t *Tester) test(ctx context.Context, n *big.Int, rounds int) (bool, error) {
	if t.Workers > 1 {
		return t.IsPrimeConcurrent(ctx, n, rounds, t.Workers)
	}
	return t.IsPrime(ctx, n, rounds)
}

// RandomPrime returns a probable prime of exactly the given bit length. The
// two most significant bits of the initial candidate are set, so the product
// of two primes generated this way has exactly twice as many bits; the
// candidate is then advanced like NextPrime. If the search walks past the bit
// length a fresh candidate is drawn.
func (t *Tester) RandomPrime(ctx context.Context, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, InvalidArgumentError{Arg: "bits", Reason: "must be at least 2"}
	}
	rng := t.rand()
	buf := make([]byte, (bits+7)/8)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		p := new(big.Int).SetBytes(buf)
		// Trim to the requested length, pin the top two bits, force odd.
		excess := uint(len(buf)*8 - bits)
		p.Rsh(p, excess)
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, bits-2, 1)
		p.SetBit(p, 0, 1)

		prime, err := t.NextPrime(ctx, p)
		if err != nil {
			return nil, err
		}
		if prime.BitLen() == bits {
			return prime, nil
		}
	}
}

// NextPrime returns the smallest probable prime p ≥ n using the default
// tester. See Tester.NextPrime.
func NextPrime(ctx context.Context, n *big.Int) (*big.Int, error) {
	return defaultTester.NextPrime(ctx, n)
}
