package bigx

import (
	"math/big"
)

// SqrtModP solves x^2 = a (mod p) for an odd prime p (p = 2 is handled
// trivially). It returns one of the two roots and true, or false when a
// is a quadratic non-residue. Which of the two roots comes back is
// unspecified; callers needing both use x and p-x.
func SqrtModP(a, p *big.Int) (*big.Int, bool) {
	a = Mod(a, p)
	if p.Cmp(two) == 0 || a.Sign() == 0 {
		return a, true
	}
	if big.Jacobi(a, p) != 1 {
		return nil, false
	}

	// p = 3 (mod 4): a^((p+1)/4) is a root.
	if p.Bit(1) == 1 {
		e := new(big.Int).Add(p, one)
		e.Rsh(e, 2)
		return ModExp(a, e, p), true
	}

	// Tonelli-Shanks. Write p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Any non-residue serves as the generator of the 2-Sylow part.
	z := new(big.Int).Set(two)
	for big.Jacobi(z, p) != -1 {
		z.Add(z, one)
	}

	m := s
	c := ModExp(z, q, p)
	t := ModExp(a, q, p)
	e := new(big.Int).Add(q, one)
	e.Rsh(e, 1)
	r := ModExp(a, e, p)

	for t.Cmp(one) != 0 {
		// Least i with t^(2^i) = 1.
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 {
			tt.Mul(tt, tt).Mod(tt, p)
			i++
		}
		b := new(big.Int).Set(c)
		for j := 0; j < m-i-1; j++ {
			b.Mul(b, b).Mod(b, p)
		}
		m = i
		c.Mul(b, b).Mod(c, p)
		t.Mul(t, c).Mod(t, p)
		r.Mul(r, b).Mod(r, p)
	}
	return r, true
}
