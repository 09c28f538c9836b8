package bigx

import (
	"math/big"
)

// ExtGCD returns g = gcd(a, b) >= 0 together with Bezout coefficients
// satisfying a*u + b*v = g. The pair is shifted along the solution
// lattice (u + k*b/g, v - k*a/g) so that |v| is minimal, mimicking
// GMP's mpz_gcdext choice on small integers and keeping the chinese
// remainder combinations platform-stable.
func ExtGCD(a, b *big.Int) (g, u, v *big.Int) {
	u = new(big.Int)
	v = new(big.Int)
	g = new(big.Int).GCD(u, v, a, b)

	if a.Sign() == 0 || b.Sign() == 0 || g.Sign() == 0 {
		return
	}

	// Minimize |v| with k = round(v / (a/g)).
	ag := new(big.Int).Quo(a, g)
	bg := new(big.Int).Quo(b, g)
	k := RoundDiv(v, ag)
	u.Add(u, new(big.Int).Mul(k, bg))
	v.Sub(v, new(big.Int).Mul(k, ag))
	return
}
