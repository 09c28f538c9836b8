package eisenstein

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/factorint"
)

// Factor is one prime power in a factorisation.
type Factor struct {
	P Int
	E int
}

// Factorise decomposes a nonzero z into prime powers and a trailing
// unit, z = prod(P_i^E_i) * unit. Split and inert primes come back
// primary; the ramified prime above 3 (which has no primary
// associate) is reported as its first-sextant form 2+w.
func Factorise(z Int) ([]Factor, Int, error) {
	if z.IsZero() {
		return nil, Int{}, errors.New("eisenstein: cannot factor zero")
	}
	nf, err := factorint.Factor(z.Norm())
	if err != nil {
		return nil, Int{}, errors.Wrap(err, "eisenstein: factoring the norm")
	}

	var out []Factor
	for _, pp := range nf {
		p, e := pp.P, pp.E
		switch new(big.Int).Mod(p, bigThree).Int64() {
		case 0:
			// ramified: 2+w is the sextant associate of 1-w
			pi := FromInt64(2, 1)
			for i := 0; i < e; i++ {
				z = mustDivExact(z, pi)
			}
			out = append(out, Factor{P: pi, E: e})

		case 2:
			// inert: p itself is prime and already 2 (mod 3)
			if e%2 != 0 {
				panic("eisenstein: inert prime with odd norm exponent")
			}
			pr := New(p, bigZero)
			for i := 0; i < e/2; i++ {
				z = mustDivExact(z, pr)
			}
			out = append(out, Factor{P: pr, E: e / 2})

		default:
			// split: separate the conjugate pair pi, pi'. Dividing
			// by p removes one of each; dividing by pi' removes one
			// pi' alone.
			fp, err := FindPrime(p)
			if err != nil {
				return nil, Int{}, err
			}
			pi, ok := Primary(fp)
			if !ok {
				panic("eisenstein: split prime without a primary associate")
			}
			piBar, ok := Primary(pi.Conj())
			if !ok {
				panic("eisenstein: split prime without a primary associate")
			}
			pr := New(p, bigZero)
			both := 0
			for divisible(z, pr) {
				z = mustDivExact(z, pr)
				both++
			}
			left, right := both, both
			for divisible(z, pi) {
				z = mustDivExact(z, pi)
				left++
			}
			for divisible(z, piBar) {
				z = mustDivExact(z, piBar)
				right++
			}
			if left+right != e {
				panic("eisenstein: split exponents do not match the norm")
			}
			if left > 0 {
				out = append(out, Factor{P: pi, E: left})
			}
			if right > 0 {
				out = append(out, Factor{P: piBar, E: right})
			}
		}
	}

	if !z.IsUnit() {
		panic("eisenstein: non-unit cofactor " + z.String() + " after factorisation")
	}
	return out, z, nil
}

// divisible reports whether d divides z exactly: both coordinates of
// z * conj(d) must be multiples of N(d).
func divisible(z, d Int) bool {
	w := z.Mul(d.Conj())
	n := d.Norm()
	return new(big.Int).Mod(w.A, n).Sign() == 0 && new(big.Int).Mod(w.B, n).Sign() == 0
}

// mustDivExact divides z by d, panicking when the division leaves a
// remainder; callers establish divisibility first.
func mustDivExact(z, d Int) Int {
	w := z.Mul(d.Conj())
	n := d.Norm()
	qa, ra := new(big.Int).QuoRem(w.A, n, new(big.Int))
	qb, rb := new(big.Int).QuoRem(w.B, n, new(big.Int))
	if ra.Sign() != 0 || rb.Sign() != 0 {
		panic("eisenstein: inexact division")
	}
	return Int{A: qa, B: qb}
}
