package qs

import (
	"math"
	"math/big"
)

// Config tunes one factorisation attempt.
type Config struct {
	// B bounds the factor base: primes up to B are considered.
	B int64
	// T is the length of one sieve window.
	T int
	// MaxWindows caps the widening schedule before ErrBudget.
	MaxWindows int
	// RetryDependencies controls what happens when a null vector
	// yields only a trivial gcd: when set, further dependencies are
	// derived (fresh solver seeds) before sieving resumes; when
	// clear, a failed dependency ends the attempt immediately.
	RetryDependencies bool
	// Observer, when non-nil, receives one WindowStat per sieved
	// window. It replaces the usual debug-trace flag.
	Observer func(WindowStat)
}

// WindowStat describes the progress after one sieve window.
type WindowStat struct {
	K         int      // position in the 0, 1, -1, 2, -2, ... schedule
	Lo        *big.Int // first argument of the window
	Smooth    int      // smooth slots found in this window
	Relations int      // relations retained after pruning
	Primes    int      // distinct parity rows across retained relations
}

// DefaultConfig sizes B and T from the bit length of n, following the
// usual L(n)-shaped growth.
func DefaultConfig(n *big.Int) Config {
	lnN := float64(n.BitLen()) * math.Ln2
	l := math.Exp(0.55 * math.Sqrt(lnN*math.Log(lnN+2)))
	b := int64(l)
	if b < 50 {
		b = 50
	}
	t := int(8 * b)
	if t < 1000 {
		t = 1000
	}
	return Config{B: b, T: t, MaxWindows: 256, RetryDependencies: true}
}

func (c Config) withDefaults(n *big.Int) Config {
	d := DefaultConfig(n)
	if c.B <= 0 {
		c.B = d.B
	}
	if c.T <= 0 {
		c.T = d.T
	}
	if c.MaxWindows <= 0 {
		c.MaxWindows = d.MaxWindows
	}
	return c
}
