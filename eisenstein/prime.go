package eisenstein

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/internal/bigx"
)

// IsPrime reports whether z is a prime of Z[w]. The primes fall into
// three classes: associates of 1-w (norm 3), rational primes
// p = 2 (mod 3) kept inert, and elements whose norm is a rational
// prime p = 1 (mod 3).
func IsPrime(z Int) bool {
	if z.IsZero() || z.IsUnit() {
		return false
	}
	nm := z.Norm()
	if nm.Cmp(bigThree) == 0 {
		return true
	}
	w := Abs(z)
	if w.B.Sign() == 0 {
		p := w.A
		return new(big.Int).Mod(p, bigThree).Int64() == 2 && p.ProbablyPrime(64)
	}
	return new(big.Int).Mod(nm, bigThree).Int64() == 1 && nm.ProbablyPrime(64)
}

// FindPrime returns an Eisenstein prime of norm p for a rational
// prime p = 1 (mod 6). With k = p/6, the residue s = sqrt(9k^2 - 1)
// makes (s - 3k) + w share exactly one prime divisor with p, which the
// Euclidean gcd extracts.
func FindPrime(p *big.Int) (Int, error) {
	if new(big.Int).Mod(p, big.NewInt(6)).Int64() != 1 {
		return Int{}, errors.Errorf("eisenstein: %s is not 1 (mod 6)", p)
	}
	k := new(big.Int).Quo(p, big.NewInt(6))
	t := new(big.Int).Mul(k, k)
	t.Mul(t, big.NewInt(9))
	t.Sub(t, bigOne)
	s, ok := bigx.SqrtModP(t, p)
	if !ok {
		// 9k^2 - 1 = -3/4 (mod p), a residue for every p = 1 (mod 3)
		return Int{}, errors.Errorf("eisenstein: %s is not prime", p)
	}
	x := new(big.Int).Mul(bigThree, k)
	x.Sub(s, x)
	g := GCD(New(p, bigZero), New(x, bigOne))
	if g.Norm().Cmp(p) != 0 {
		return Int{}, errors.Errorf("eisenstein: gcd with %s has norm %s, want %s", p, g.Norm(), p)
	}
	return g, nil
}
