package numtheory

import "math/big"

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ModExp computes base^exponent mod modulus using iterative binary
// exponentiation (square-and-multiply). The result is always in
// [0, modulus); in particular an exponent of zero yields 1 mod modulus,
// which is 0 when the modulus is 1.
//
// An InvalidArgumentError is returned when the exponent is negative or the
// modulus is not positive.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if exponent.Sign() < 0 {
		return nil, InvalidArgumentError{Arg: "exponent", Reason: "must be non-negative"}
	}
	if modulus.Sign() <= 0 {
		return nil, InvalidArgumentError{Arg: "modulus", Reason: "must be positive"}
	}
	return modExp(new(big.Int), base, exponent, modulus), nil
}

// modExp is the validated core of ModExp. It writes base^exponent mod modulus
// into dst and returns it. dst must not alias any of the inputs.
//
// The loop inspects the low bit of the exponent, multiplies the accumulator
// when it is set, squares the base, and shifts the exponent right by one bit
// until it reaches zero.
func modExp(dst, base, exponent, modulus *big.Int) *big.Int {
	dst.SetInt64(1)
	dst.Mod(dst, modulus)

	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			dst.Mul(dst, b)
			dst.Mod(dst, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}
	return dst
}
