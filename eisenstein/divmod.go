package eisenstein

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrDivByZero reports division by the zero element.
var ErrDivByZero = errors.New("eisenstein: division by zero")

// QuotRem divides g by h rounding the quotient components toward
// zero, the analogue of integer quot/rem.
func QuotRem(g, h Int) (q, r Int, err error) {
	return divide(g, h, func(a, d *big.Int) *big.Int {
		return new(big.Int).Quo(a, d)
	})
}

// DivMod divides g by h rounding the quotient components toward
// negative infinity. The remainder satisfies N(r) < N(h): the
// fractional part left in each coordinate lies in [0,1), where the
// norm form stays below one.
func DivMod(g, h Int) (q, r Int, err error) {
	return divide(g, h, func(a, d *big.Int) *big.Int {
		return new(big.Int).Div(a, d) // d = N(h) > 0, so Div floors
	})
}

// divide computes q from the coordinates of g * conj(h) / N(h) with
// the caller's rounding and r = g - q*h.
func divide(g, h Int, round func(a, d *big.Int) *big.Int) (Int, Int, error) {
	if h.IsZero() {
		return Int{}, Int{}, ErrDivByZero
	}
	w := g.Mul(h.Conj())
	d := h.Norm()
	q := Int{A: round(w.A, d), B: round(w.B, d)}
	r := g.Sub(q.Mul(h))
	return q, r, nil
}

// GCD returns a greatest common divisor of g and h by the Euclidean
// algorithm on DivMod, normalised to the first sextant. GCD(0, 0) is
// zero.
func GCD(g, h Int) Int {
	for !h.IsZero() {
		_, r, err := DivMod(g, h)
		if err != nil {
			panic(err) // h checked non-zero
		}
		g, h = h, r
	}
	return Abs(g)
}
