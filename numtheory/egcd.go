package numtheory

import "math/big"

// ExtendedGCD computes the Bézout triple (g, x, y) for a and b such that
//
//	g = gcd(|a|, |b|) = a·x + b·y, g ≥ 0.
//
// It runs the iterative extended Euclidean recurrence: two coefficient pairs
// are carried along the Euclidean division chain and updated by quotient
// substitution until the remainder reaches zero. Zero and negative inputs are
// handled: ExtendedGCD(0, b) = (|b|, 0, sign(b)) and symmetrically for b = 0.
//
// The inputs are never mutated.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	// (oldR, r) walks the remainder chain; (oldX, x) and (oldY, y) carry
	// the coefficients of a and b for the corresponding remainders.
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldX, curX := big.NewInt(1), big.NewInt(0)
	oldY, curY := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	t := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		t.Mul(q, r)
		oldR.Sub(oldR, t)
		oldR, r = r, oldR

		t.Mul(q, curX)
		oldX.Sub(oldX, t)
		oldX, curX = curX, oldX

		t.Mul(q, curY)
		oldY.Sub(oldY, t)
		oldY, curY = curY, oldY
	}

	// Truncated division keeps the invariant a·oldX + b·oldY = oldR at every
	// step, but oldR carries the sign of the inputs; normalize to g ≥ 0.
	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldX.Neg(oldX)
		oldY.Neg(oldY)
	}
	return oldR, oldX, oldY
}
