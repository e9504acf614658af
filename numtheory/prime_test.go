package numtheory

import (
	"context"
	"errors"
	"math/big"
	"testing"
)

func TestNextPrime_KnownLargeGap(t *testing.T) {
	t.Parallel()
	start := mustBig(t, "4829837983753984028472098472089547098728675098723407520875258")
	want := mustBig(t, knownPrime)

	got, err := (&Tester{}).NextPrime(context.Background(), start)
	if err != nil {
		t.Fatalf("NextPrime returned error: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Errorf("NextPrime = %s, want %s", got, want)
	}
}

func TestNextPrime_SmallValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, want int64
	}{
		{-5, 2}, {0, 2}, {1, 2}, {2, 2},
		{3, 3},  // inclusive policy: a prime candidate is returned unchanged
		{4, 5},
		{7, 7},
		{8, 11},
		{14, 17},
		{90, 97},
		{7907, 7907},
		{7908, 7919},
	}

	tester := &Tester{}
	for _, tt := range tests {
		got, err := tester.NextPrime(context.Background(), big.NewInt(tt.n))
		if err != nil {
			t.Fatalf("NextPrime(%d) returned error: %v", tt.n, err)
		}
		if got.Int64() != tt.want {
			t.Errorf("NextPrime(%d) = %s, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNextPrime_ConcurrentSearchAgrees(t *testing.T) {
	t.Parallel()
	start := mustBig(t, "4829837983753984028472098472089547098728675098723407520875258")
	want := mustBig(t, knownPrime)

	for _, workers := range []int{1, 4, 8} {
		tester := &Tester{Workers: workers}
		got, err := tester.NextPrime(context.Background(), start)
		if err != nil {
			t.Fatalf("NextPrime with %d workers returned error: %v", workers, err)
		}
		if got.Cmp(want) != 0 {
			t.Errorf("NextPrime with %d workers = %s, want %s", workers, got, want)
		}
	}
}

func TestNextPrime_InvalidArgument(t *testing.T) {
	t.Parallel()
	_, err := (&Tester{}).NextPrime(context.Background(), nil)
	var invalid InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidArgumentError, got %v", err)
	}
}

func TestNextPrime_ContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Tester{}).NextPrime(ctx, big.NewInt(1000))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestHasSmallFactor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    string
		want bool
	}{
		{"odd composite", "9", true},
		{"small prime is not its own factor", "3", false},
		{"larger sieved prime", "1009", false},
		{"product of sieved primes", "1018081", true},        // 1009²
		{"product of large primes", "1000036000099", false}, // 1000003·1000033, no factor below the sieve bound
		{"large prime", knownPrime, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := hasSmallFactor(mustBig(t, tt.n))
			if got != tt.want {
				t.Errorf("hasSmallFactor(%s) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestOddPrimesBelow(t *testing.T) {
	t.Parallel()
	got := oddPrimesBelow(30)
	want := []uint64{3, 5, 7, 11, 13, 17, 19, 23, 29}
	if len(got) != len(want) {
		t.Fatalf("oddPrimesBelow(30) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("oddPrimesBelow(30) = %v, want %v", got, want)
		}
	}
}

func TestRandomPrime(t *testing.T) {
	t.Parallel()
	tester := &Tester{}
	for _, bits := range []int{16, 64, 128} {
		p, err := tester.RandomPrime(context.Background(), bits)
		if err != nil {
			t.Fatalf("RandomPrime(%d) returned error: %v", bits, err)
		}
		if p.BitLen() != bits {
			t.Errorf("RandomPrime(%d) has bit length %d", bits, p.BitLen())
		}
		if p.Bit(bits-2) != 1 {
			t.Errorf("RandomPrime(%d): second-highest bit not set", bits)
		}
		prime, err := tester.IsPrime(context.Background(), p, 40)
		if err != nil {
			t.Fatalf("IsPrime returned error: %v", err)
		}
		if !prime {
			t.Errorf("RandomPrime(%d) = %s is not prime", bits, p)
		}
	}
}

func TestRandomPrime_InvalidArgument(t *testing.T) {
	t.Parallel()
	_, err := (&Tester{}).RandomPrime(context.Background(), 1)
	var invalid InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidArgumentError, got %v", err)
	}
}
