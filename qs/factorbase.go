package qs

import (
	"log"
	"math"
	"math/big"

	"github.com/cartazio/arithmoi/internal/bigx"
	"github.com/cartazio/arithmoi/sieve"
)

// fbPrime is one factor-base prime with a root of x^2 = n (mod p).
// The two sieving progressions start at root and p-root.
type fbPrime struct {
	p    int64
	root int64
	logp float64
}

// FactorBase holds the primes up to the bound for which n is a
// quadratic residue. Primes with Jacobi symbol -1 can never divide
// x^2 - n and are dropped up front.
type FactorBase struct {
	n      *big.Int
	primes []fbPrime
}

// NewFactorBase builds the base for n with the given bound. When a
// candidate prime divides n outright the search is over before it
// began: that prime is returned as trivial and the base is nil.
func NewFactorBase(n *big.Int, bound int64) (fb *FactorBase, trivial *big.Int) {
	fb = &FactorBase{n: n}
	tested := 0
	for _, p := range sieve.Eratosthenes(bound + 1) {
		tested++
		pb := big.NewInt(p)
		np := new(big.Int).Mod(n, pb)
		if np.Sign() == 0 {
			return nil, pb
		}
		if p == 2 {
			// n odd: x = n (mod 2) always solves x^2 = n (mod 2)
			fb.primes = append(fb.primes, fbPrime{p: 2, root: np.Int64(), logp: math.Ln2})
			continue
		}
		if big.Jacobi(np, pb) != 1 {
			continue
		}
		r, ok := bigx.SqrtModP(np, pb)
		if !ok {
			panic("qs: residue lost between Jacobi and Tonelli")
		}
		fb.primes = append(fb.primes, fbPrime{p: p, root: r.Int64(), logp: math.Log(float64(p))})
	}
	log.Printf("[qs] factor base holds %d of the first %d primes (bound %d)", len(fb.primes), tested, bound)
	return fb, nil
}

// Size returns the number of base primes.
func (fb *FactorBase) Size() int { return len(fb.primes) }

// Bound returns the largest base prime, or 0 for an empty base.
func (fb *FactorBase) Bound() int64 {
	if len(fb.primes) == 0 {
		return 0
	}
	return fb.primes[len(fb.primes)-1].p
}
