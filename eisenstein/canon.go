package eisenstein

import (
	"math/big"
)

// Abs rotates z into the first sextant 0 <= arg < pi/3, the canonical
// associate. Writing z = x*1 + y*(1+w), the sextant is exactly
// x > 0, y >= 0, i.e. a > b >= 0. Zero maps to zero.
func Abs(z Int) Int {
	if z.IsZero() {
		return z
	}
	w := z
	for i := 0; i < 6; i++ {
		if w.A.Cmp(w.B) > 0 && w.B.Sign() >= 0 {
			return w
		}
		w = w.Mul(FromInt64(1, 1)) // rotate by 60 degrees
	}
	panic("eisenstein: no associate in the first sextant")
}

// Primary returns the associate of z congruent to 2 (mod 3), the
// canonical representative used by the factorisation. It exists iff 3
// does not divide N(z); ok is false otherwise (in particular for the
// ramified prime 1-w and its associates).
func Primary(z Int) (Int, bool) {
	if z.IsZero() {
		return Int{}, false
	}
	w := z
	for i := 0; i < 6; i++ {
		am := new(big.Int).Mod(w.A, bigThree)
		bm := new(big.Int).Mod(w.B, bigThree)
		if am.Int64() == 2 && bm.Sign() == 0 {
			return w, true
		}
		w = w.Mul(FromInt64(1, 1))
	}
	return Int{}, false
}
