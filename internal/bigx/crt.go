package bigx

import (
	"math/big"
)

// CRT combines the congruences x = n1 (mod m1) and x = n2 (mod m2)
// into x = n (mod L) with L = lcm(m1, m2). The moduli need not be
// coprime: when d = gcd(m1, m2) > 1 a solution exists iff d divides
// n1 - n2, and ok is false otherwise. n is canonical in [0, L).
func CRT(n1, m1, n2, m2 *big.Int) (n, l *big.Int, ok bool) {
	d, u, v := ExtGCD(m1, m2)

	if d.Cmp(one) == 0 {
		l = new(big.Int).Mul(m1, m2)
		n = new(big.Int).Mul(v, m2)
		n.Mul(n, n1)
		t := new(big.Int).Mul(u, m1)
		t.Mul(t, n2)
		n.Add(n, t).Mod(n, l)
		return n, l, true
	}

	diff := new(big.Int).Sub(n1, n2)
	if new(big.Int).Mod(diff, d).Sign() != 0 {
		return nil, nil, false
	}

	m1d := new(big.Int).Quo(m1, d)
	m2d := new(big.Int).Quo(m2, d)
	l = new(big.Int).Mul(m1d, m2)
	n = new(big.Int).Mul(v, m2d)
	n.Mul(n, n1)
	t := new(big.Int).Mul(u, m1d)
	t.Mul(t, n2)
	n.Add(n, t).Mod(n, l)
	return n, l, true
}

// SolveLinear solves a*x = b (mod m). When gcd(a, m) divides b the
// solutions form a single class x = x0 (mod m'), m' = m/gcd(a, m),
// returned as (x0, m', true); otherwise ok is false.
func SolveLinear(a, b, m *big.Int) (x0, mm *big.Int, ok bool) {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), m)
	if new(big.Int).Mod(b, g).Sign() != 0 {
		return nil, nil, false
	}
	mm = new(big.Int).Quo(m, g)
	ag := new(big.Int).Quo(a, g)
	bg := new(big.Int).Quo(b, g)
	inv, found := ModInverse(Mod(ag, mm), mm)
	if !found {
		// gcd(a/g, m/g) = 1 by construction
		panic("bigx: linear congruence lost coprimality")
	}
	x0 = new(big.Int).Mul(inv, Mod(bg, mm))
	x0.Mod(x0, mm)
	return x0, mm, true
}
