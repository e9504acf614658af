package numtheory

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// IsPrimeConcurrent reports whether n is probably prime after rounds rounds
// of Miller-Rabin, with the rounds partitioned as evenly as possible across
// the given number of workers. It is semantically equivalent to IsPrime with
// the same round count: the split is a performance optimization, not a change
// in the statistical guarantee.
//
// The decomposition of n-1 is computed once and shared read-only by all
// workers. Each worker samples its witnesses independently; the overall
// result is the conjunction of the worker results. As soon as one worker
// proves n composite the remaining workers are cancelled. A worker that
// terminates abnormally surfaces as a WorkerError; a missing result is never
// treated as a pass.
func (t *Tester) IsPrimeConcurrent(ctx context.Context, n *big.Int, rounds, workers int) (bool, error) {
	if err := validateCandidate(n, rounds); err != nil {
		return false, err
	}
	if workers < 1 {
		return false, InvalidArgumentError{Arg: "workers", Reason: "must be at least 1"}
	}
	if verdict, decided := trivialPrimality(n); decided {
		t.observer().CandidateTested(n, verdict)
		return verdict, nil
	}

	dec := decompose(n)
	shares := partitionRounds(rounds, workers)
	rng := t.sharedRand()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// composite records that some worker proved n composite. It is set
	// before cancel(), so workers that observe the cancellation can tell a
	// conclusive early exit from an external one.
	var composite atomic.Bool

	g, ctx := errgroup.WithContext(ctx)
	for i, share := range shares {
		worker, quota := i, share
		g.Go(func() error {
			passed, err := t.runRounds(ctx, n, dec, quota, rng)
			switch {
			case err != nil && isContextError(err):
				if composite.Load() {
					return nil // cancelled by a conclusive composite proof
				}
				return err
			case err != nil:
				return WorkerError{Worker: worker, Cause: err}
			case !passed:
				composite.Store(true)
				cancel()
			}
			return nil
		})
	}
	err := g.Wait()

	// A single composite proof is conclusive regardless of how the other
	// workers ended.
	if composite.Load() {
		t.observer().CandidateTested(n, false)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	t.observer().CandidateTested(n, true)
	return true, nil
}

// partitionRounds splits rounds across at most workers shares, as evenly as
// possible. The shares always sum to exactly rounds; under-counting would
// silently degrade the 4^-rounds soundness bound. Workers beyond the round
// count get no share.
func partitionRounds(rounds, workers int) []int {
	if workers > rounds {
		workers = rounds
	}
	shares := make([]int, workers)
	base, extra := rounds/workers, rounds%workers
	for i := range shares {
		shares[i] = base
		if i < extra {
			shares[i]++
		}
	}
	return shares
}

// sharedRand returns a random source safe for use by concurrent workers.
// crypto/rand.Reader is already safe; a caller-supplied source is serialized
// behind a mutex so the workers never interleave partial reads.
func (t *Tester) sharedRand() io.Reader {
	if t.Rand == nil {
		return rand.Reader
	}
	return &lockedReader{r: t.Rand}
}

// lockedReader serializes reads from a shared source.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// isContextError reports whether err stems from context cancellation or an
// expired deadline.
func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsPrimeConcurrent reports whether n is probably prime using the default
// tester. See Tester.IsPrimeConcurrent.
func IsPrimeConcurrent(ctx context.Context, n *big.Int, rounds, workers int) (bool, error) {
	return defaultTester.IsPrimeConcurrent(ctx, n, rounds, workers)
}
