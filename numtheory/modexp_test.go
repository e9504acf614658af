package numtheory

import (
	"errors"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestModExp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                string
		base, exp, mod, want int64
	}{
		{"known vector", 4, 13, 497, 445},
		{"zero exponent", 7, 0, 13, 1},
		{"zero exponent modulus one", 7, 0, 1, 0},
		{"modulus one", 12345, 678, 1, 0},
		{"base zero", 0, 10, 7, 0},
		{"base larger than modulus", 10, 3, 7, 6},
		{"negative base", -2, 3, 5, 2},
		{"exponent one", 9, 1, 11, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ModExp(big.NewInt(tt.base), big.NewInt(tt.exp), big.NewInt(tt.mod))
			if err != nil {
				t.Fatalf("ModExp(%d, %d, %d) returned error: %v", tt.base, tt.exp, tt.mod, err)
			}
			if got.Int64() != tt.want {
				t.Errorf("ModExp(%d, %d, %d) = %s, want %d", tt.base, tt.exp, tt.mod, got, tt.want)
			}
		})
	}
}

func TestModExp_InvalidArguments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		base, exp, mod int64
	}{
		{"negative exponent", 2, -1, 7},
		{"zero modulus", 2, 3, 0},
		{"negative modulus", 2, 3, -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ModExp(big.NewInt(tt.base), big.NewInt(tt.exp), big.NewInt(tt.mod))
			if err == nil {
				t.Fatalf("ModExp(%d, %d, %d) should have been rejected", tt.base, tt.exp, tt.mod)
			}
			var invalid InvalidArgumentError
			if !errors.As(err, &invalid) {
				t.Errorf("expected InvalidArgumentError, got %T: %v", err, err)
			}
		})
	}
}

// TestModExp_MatchesReference_PropertyBased checks ModExp against the
// independent math/big implementation across random operands.
func TestModExp_MatchesReference_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("agrees with big.Exp", prop.ForAll(
		func(base, exp, mod uint64) bool {
			if mod == 0 {
				mod = 1
			}
			b := new(big.Int).SetUint64(base)
			e := new(big.Int).SetUint64(exp)
			m := new(big.Int).SetUint64(mod)

			got, err := ModExp(b, e, m)
			if err != nil {
				return false
			}
			want := new(big.Int).Exp(b, e, m)
			return got.Cmp(want) == 0
		},
		gen.UInt64(),
		gen.UInt64Range(0, 1<<16),
		gen.UInt64(),
	))

	properties.Property("result is always in [0, modulus)", prop.ForAll(
		func(base int64, exp, mod uint64) bool {
			if mod == 0 {
				mod = 1
			}
			m := new(big.Int).SetUint64(mod)
			got, err := ModExp(big.NewInt(base), new(big.Int).SetUint64(exp), m)
			if err != nil {
				return false
			}
			return got.Sign() >= 0 && got.Cmp(m) < 0
		},
		gen.Int64(),
		gen.UInt64Range(0, 1<<12),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
