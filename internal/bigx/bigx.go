package bigx

// Package bigx collects the arbitrary-precision helpers shared by the
// sieves, the discrete-log core and the Eisenstein ring: canonical
// extended gcd, modular square roots, linear congruences and chinese
// remaindering over possibly non-coprime moduli.

import (
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Mod returns a reduced to the canonical representative in [0, m).
// m must be positive.
func Mod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// ModExp returns a^e mod m for e >= 0.
func ModExp(a, e, m *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, m)
}

// ModInverse returns the inverse of a modulo m, or false when
// gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, false
	}
	return inv, true
}

// Sqrt returns the integer square root of n >= 0.
func Sqrt(n *big.Int) *big.Int {
	return new(big.Int).Sqrt(n)
}

// FloorDiv returns floor(a/d) for d > 0.
func FloorDiv(a, d *big.Int) *big.Int {
	return new(big.Int).Div(a, d)
}

// RoundDiv returns the integer nearest to a/d, halves rounded away
// from zero.
func RoundDiv(a, d *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, d, new(big.Int))
	r.Abs(r).Lsh(r, 1)
	if r.CmpAbs(d) >= 0 {
		if (a.Sign() < 0) != (d.Sign() < 0) {
			q.Sub(q, one)
		} else {
			q.Add(q, one)
		}
	}
	return q
}
