package modgroup

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/internal/bigx"
	"github.com/cartazio/arithmoi/internal/seed"
)

// DLogConfig bounds the randomized parts of the search.
type DLogConfig struct {
	// MaxRestarts caps the Pollard-rho starting pairs tried before
	// ErrNoCollision. The original retried forever; the cap is
	// deliberately explicit.
	MaxRestarts int
	// BSGSLimit is the prime size below which baby-step giant-step
	// replaces rho.
	BSGSLimit int64
}

// DefaultDLogConfig returns the standard bounds.
func DefaultDLogConfig() DLogConfig {
	return DLogConfig{MaxRestarts: 64, BSGSLimit: 100_000_000}
}

// ErrNoCollision reports that Pollard rho ran out of restarts without
// a usable collision.
var ErrNoCollision = errors.New("modgroup: pollard rho exhausted its restart budget")

var three = big.NewInt(3)

// DLog returns the unique e in [0, ord(a)) with a^e = b (mod m). The
// base-case search below BSGSLimit returns the smallest exponent.
func DLog(a PrimitiveRoot, b MultMod, cfg DLogConfig) (*big.Int, error) {
	if a.M.Cmp(b.M) != 0 {
		return nil, errors.Errorf("modgroup: mismatched moduli %s and %s", a.M, b.M)
	}
	if cfg.MaxRestarts <= 0 {
		cfg.MaxRestarts = DefaultDLogConfig().MaxRestarts
	}
	if cfg.BSGSLimit <= 0 {
		cfg.BSGSLimit = DefaultDLogConfig().BSGSLimit
	}
	g := a.Group
	switch g.Shape {
	case Two:
		return big.NewInt(0), nil
	case Four:
		if b.V.Cmp(one) == 0 {
			return big.NewInt(0), nil
		}
		return big.NewInt(1), nil
	case OddPrimePower:
		return dlogPrimePower(g.P, g.K, a.V, b.V, cfg)
	default: // TwiceOddPrimePower: t -> t mod p^k is an isomorphism
		pk := g.pk()
		av := new(big.Int).Mod(a.V, pk)
		bv := new(big.Int).Mod(b.V, pk)
		return dlogPrimePower(g.P, g.K, av, bv, cfg)
	}
}

// dlogPrimePower applies the Bach reduction: solve the base case mod
// p, read the p-part off the additive character theta, and stitch the
// two with the chinese remainder.
func dlogPrimePower(p *big.Int, k int, a, b *big.Int, cfg DLogConfig) (*big.Int, error) {
	if k == 1 {
		return dlogPrime(p, a, b, cfg)
	}
	e0, err := dlogPrime(p, new(big.Int).Mod(a, p), new(big.Int).Mod(b, p), cfg)
	if err != nil {
		return nil, err
	}

	pm1 := new(big.Int).Sub(p, one)
	pk1 := new(big.Int).Exp(p, big.NewInt(int64(k-1)), nil)
	pk := new(big.Int).Mul(pk1, p)
	p2k1 := new(big.Int).Exp(p, big.NewInt(int64(2*k-1)), nil)
	phi := new(big.Int).Mul(pk1, pm1) // p^k - p^(k-1)

	// theta(x) = (x^phi - 1 mod p^(2k-1)) / p^k, an additive map
	// onto Z/p^(k-1)Z
	theta := func(x *big.Int) *big.Int {
		t := bigx.ModExp(x, phi, p2k1)
		t.Sub(t, one)
		t.Quo(t, pk)
		return t.Mod(t, pk1)
	}

	ta := theta(a)
	inv, ok := bigx.ModInverse(ta, pk1)
	if !ok {
		panic("modgroup: theta of a generator is not invertible")
	}
	c := new(big.Int).Mul(inv, theta(b))
	c.Mod(c, pk1)

	e, _, ok := bigx.CRT(e0, pm1, c, pk1)
	if !ok {
		panic("modgroup: bach congruences are incompatible")
	}
	return e, nil
}

func dlogPrime(p, a, b *big.Int, cfg DLogConfig) (*big.Int, error) {
	if p.IsInt64() && p.Int64() < cfg.BSGSLimit {
		return big.NewInt(bsgs(p.Int64(), a.Int64(), b.Int64())), nil
	}
	return rhoPrime(p, a, b, cfg)
}

// bsgs is the meet-in-the-middle base case for small p. It returns
// the smallest exponent: baby steps keep the first (lowest) index per
// value and giant steps scan outward from zero.
func bsgs(p, a, b int64) int64 {
	n := p - 1
	m := int64(1)
	for m*m < n {
		m++
	}
	baby := make(map[int64]int64, m)
	acc := int64(1)
	for j := int64(0); j < m; j++ {
		if _, ok := baby[acc]; !ok {
			baby[acc] = j
		}
		acc = acc * a % p
	}
	// giant multiplier a^(-m) = a^(n-m)
	giant := bigx.ModExp(big.NewInt(a), big.NewInt(n-m), big.NewInt(p)).Int64()
	gamma := b % p
	for i := int64(0); i <= m; i++ {
		if j, ok := baby[gamma]; ok {
			return i*m + j
		}
		gamma = gamma * giant % p
	}
	// a generates, so every unit has a logarithm
	panic("modgroup: bsgs scanned the whole group without a match")
}

// rhoPrime runs the three-region Pollard walk with Floyd collision
// detection. Each restart reseeds the starting pair; a collision whose
// congruence has too large a gcd is thrown away rather than ground
// through.
func rhoPrime(p, a, b *big.Int, cfg DLogConfig) (*big.Int, error) {
	n := new(big.Int).Sub(p, one)

	step := func(x, al, be *big.Int) {
		switch new(big.Int).Mod(x, three).Int64() {
		case 0:
			x.Mul(x, x).Mod(x, p)
			al.Lsh(al, 1).Mod(al, n)
			be.Lsh(be, 1).Mod(be, n)
		case 1:
			x.Mul(x, a).Mod(x, p)
			al.Add(al, one).Mod(al, n)
		default:
			x.Mul(x, b).Mod(x, p)
			be.Add(be, one).Mod(be, n)
		}
	}

	for restart := 0; restart < cfg.MaxRestarts; restart++ {
		key := seed.Derive("modgroup/rho", p, a, b, big.NewInt(int64(restart)))
		prng := seed.NewPRNG(key)
		al1 := seed.BigBelow(prng, n)
		be1 := seed.BigBelow(prng, n)
		x1 := new(big.Int).Mul(bigx.ModExp(a, al1, p), bigx.ModExp(b, be1, p))
		x1.Mod(x1, p)

		x2 := new(big.Int).Set(x1)
		al2 := new(big.Int).Set(al1)
		be2 := new(big.Int).Set(be1)

		// expected collision within O(sqrt p); give each start a
		// generous multiple of that before reseeding
		iterCap := int64(1) << (uint(p.BitLen())/2 + 4)
		if iterCap <= 0 || iterCap > 1<<40 {
			iterCap = 1 << 40
		}
		for it := int64(0); it < iterCap; it++ {
			step(x1, al1, be1)
			step(x2, al2, be2)
			step(x2, al2, be2)
			if x1.Cmp(x2) == 0 {
				break
			}
		}
		if x1.Cmp(x2) != 0 {
			continue
		}

		// al1 + e*be1 = al2 + e*be2, so e*(be1-be2) = al2-al1 (mod n)
		r := new(big.Int).Sub(be1, be2)
		r.Mod(r, n)
		if r.Sign() == 0 {
			continue
		}
		rhs := new(big.Int).Sub(al2, al1)
		rhs.Mod(rhs, n)
		x0, mm, ok := bigx.SolveLinear(r, rhs, n)
		if !ok {
			continue
		}
		g := new(big.Int).Quo(n, mm)
		if !g.IsInt64() || g.Int64() > 4096 {
			// gcd too large: cheaper to restart than enumerate
			continue
		}
		cand := new(big.Int).Set(x0)
		for i := int64(0); i < g.Int64(); i++ {
			if bigx.ModExp(a, cand, p).Cmp(b) == 0 {
				return cand, nil
			}
			cand.Add(cand, mm)
		}
	}
	return nil, ErrNoCollision
}
