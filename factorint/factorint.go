package factorint

// Package factorint factors rational integers: trial division over a
// sieve seed strips the small primes, Miller-Rabin gates what is left,
// and Brent's variant of Pollard rho splits the remaining composites.
// It backs the Eisenstein norm factorisation and the cyclic-group
// classifier; FactorWithQS additionally hands large composites to the
// quadratic sieve.

import (
	"math/big"
	"sort"

	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/internal/seed"
	"github.com/cartazio/arithmoi/qs"
	"github.com/cartazio/arithmoi/sieve"
)

// smallLimit bounds the trial-division seed.
const smallLimit = 1 << 14

// rhoRestarts bounds the reseeded Brent walks per composite.
const rhoRestarts = 64

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// PrimePower is one factor p^e.
type PrimePower struct {
	P *big.Int
	E int
}

// Factorization lists prime powers in ascending prime order.
type Factorization []PrimePower

// ErrIncomplete reports a cofactor that resisted every splitting
// attempt.
var ErrIncomplete = errors.New("factorint: splitting attempts exhausted")

// Factor decomposes a positive integer. Factor(1) is empty.
func Factor(n *big.Int) (Factorization, error) {
	return factor(n, nil)
}

// FactorWithQS is Factor with the quadratic sieve tried first on every
// odd composite cofactor left after trial division; rho takes over
// when the sieve returns an error.
func FactorWithQS(n *big.Int, cfg qs.Config) (Factorization, error) {
	return factor(n, &cfg)
}

func factor(n *big.Int, qsCfg *qs.Config) (Factorization, error) {
	if n.Sign() <= 0 {
		return nil, errors.Errorf("factorint: argument must be positive, got %s", n)
	}
	counts := make(map[string]*PrimePower)
	rem := new(big.Int).Set(n)

	// strip the sieve primes first
	r := new(big.Int)
	for _, p := range sieve.Eratosthenes(smallLimit) {
		pb := big.NewInt(p)
		if new(big.Int).Mul(pb, pb).Cmp(rem) > 0 {
			break
		}
		for {
			q, rr := new(big.Int).QuoRem(rem, pb, r)
			if rr.Sign() != 0 {
				break
			}
			rem.Set(q)
			bump(counts, pb, 1)
		}
	}
	if rem.Cmp(one) > 0 {
		if err := split(rem, counts, qsCfg); err != nil {
			return nil, err
		}
	}

	out := make(Factorization, 0, len(counts))
	for _, pp := range counts {
		out = append(out, *pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].P.Cmp(out[j].P) < 0 })
	return out, nil
}

func bump(counts map[string]*PrimePower, p *big.Int, e int) {
	k := p.Text(16)
	if pp, ok := counts[k]; ok {
		pp.E += e
	} else {
		counts[k] = &PrimePower{P: new(big.Int).Set(p), E: e}
	}
}

// split recursively decomposes a composite free of sieve primes.
func split(n *big.Int, counts map[string]*PrimePower, qsCfg *qs.Config) error {
	if n.ProbablyPrime(64) {
		bump(counts, n, 1)
		return nil
	}
	// perfect squares fall straight through
	s := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(s, s).Cmp(n) == 0 {
		if err := split(s, counts, qsCfg); err != nil {
			return err
		}
		// double the exponents contributed by the root
		return split(s, counts, qsCfg)
	}

	var d *big.Int
	if qsCfg != nil && n.Bit(0) == 1 {
		if f, err := qs.Factor(n, *qsCfg); err == nil {
			d = f
		}
	}
	if d == nil {
		d = rho(n)
	}
	if d == nil {
		return errors.Wrapf(ErrIncomplete, "cofactor %s", n)
	}
	if err := split(d, counts, qsCfg); err != nil {
		return err
	}
	return split(new(big.Int).Quo(n, d), counts, qsCfg)
}

// rho is Brent's cycle-finding variant. The walks are deterministic:
// each restart derives its polynomial offset and start from a keyed
// PRNG.
func rho(n *big.Int) *big.Int {
	if n.Bit(0) == 0 {
		return new(big.Int).Set(two)
	}
	for restart := 0; restart < rhoRestarts; restart++ {
		key := seed.Derive("factorint/rho", n, big.NewInt(int64(restart)))
		prng := seed.NewPRNG(key)
		nm3 := new(big.Int).Sub(n, big.NewInt(3))
		y := new(big.Int).Add(seed.BigBelow(prng, nm3), two)
		c := new(big.Int).Add(seed.BigBelow(prng, nm3), one)

		g := brent(n, y, c)
		if g != nil && g.Cmp(one) > 0 && g.Cmp(n) < 0 {
			return g
		}
	}
	return nil
}

func brent(n, y, c *big.Int) *big.Int {
	m := int64(128)
	g := new(big.Int).Set(one)
	q := new(big.Int).Set(one)
	x := new(big.Int)
	ys := new(big.Int)
	t := new(big.Int)

	step := func(v *big.Int) {
		v.Mul(v, v).Add(v, c).Mod(v, n)
	}

	r := int64(1)
	for g.Cmp(one) == 0 && r < 1<<24 {
		x.Set(y)
		for i := int64(0); i < r; i++ {
			step(y)
		}
		for k := int64(0); k < r && g.Cmp(one) == 0; k += m {
			ys.Set(y)
			lim := m
			if r-k < m {
				lim = r - k
			}
			for i := int64(0); i < lim; i++ {
				step(y)
				t.Sub(x, y)
				q.Mul(q, t.Abs(t)).Mod(q, n)
			}
			g.GCD(nil, nil, q, n)
		}
		r <<= 1
	}
	if g.Cmp(n) == 0 {
		// backtrack one step at a time
		for {
			step(ys)
			t.Sub(x, ys)
			g.GCD(nil, nil, t.Abs(t), n)
			if g.Cmp(one) > 0 {
				break
			}
		}
	}
	if g.Cmp(n) == 0 {
		return nil
	}
	return g
}
