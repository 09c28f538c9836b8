package qs

// Package qs factors odd composites with the quadratic sieve: collect
// B-smooth relations x^2 - n = sign * product(primes), prune, find a
// parity dependency over GF(2) and read a factor off gcd(X - Y, n).

import (
	"log"
	"math"
	"math/big"
	"sort"

	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/gf2"
	"github.com/cartazio/arithmoi/internal/bigx"
	"github.com/cartazio/arithmoi/internal/seed"
	"github.com/cartazio/arithmoi/primeset"
)

var (
	// ErrBudget reports that MaxWindows ran out before the relation
	// count overtook the parity-row count.
	ErrBudget = errors.New("qs: window budget exhausted before enough relations accumulated")
	// ErrNoFactor reports that every derived dependency produced a
	// trivial gcd.
	ErrNoFactor = errors.New("qs: dependencies exhausted without a nontrivial factor")
)

// smoothSlack is the residual threshold after log sieving: below a
// single log 2 the slot can only be an exact squarefree product of
// base primes (modulo rounding), which verify then confirms.
const smoothSlack = 0.6

// maxDependencyTries bounds the fresh solver seeds tried per solve
// when RetryDependencies is set.
const maxDependencyTries = 16

var one = big.NewInt(1)

// Factor returns a nontrivial factor of the odd composite n. The
// input must have at least two distinct prime factors; primes and even
// numbers are rejected loudly. Recoverable exhaustion comes back as
// ErrBudget or ErrNoFactor.
func Factor(n *big.Int, cfg Config) (*big.Int, error) {
	if n.Sign() <= 0 || n.Cmp(one) == 0 {
		return nil, errors.Errorf("qs: n must exceed 1, got %s", n)
	}
	if n.Bit(0) == 0 {
		return nil, errors.Errorf("qs: n must be odd, got %s", n)
	}
	if n.ProbablyPrime(64) {
		return nil, errors.Errorf("qs: %s is prime", n)
	}
	s := bigx.Sqrt(n)
	if new(big.Int).Mul(s, s).Cmp(n) == 0 {
		return s, nil
	}

	cfg = cfg.withDefaults(n)
	fb, trivial := NewFactorBase(n, cfg.B)
	if trivial != nil {
		return trivial, nil
	}

	var rels []Relation
	for w := 0; w < cfg.MaxWindows; w++ {
		k := windowIndex(w)
		lo := new(big.Int).Sub(s, big.NewInt(int64(cfg.T/2)))
		lo.Add(lo, new(big.Int).Mul(big.NewInt(int64(k)), big.NewInt(int64(cfg.T))))

		found := fb.sieveWindow(lo, cfg.T)
		rels = prune(append(rels, found...))
		rows := parityRows(rels)
		if cfg.Observer != nil {
			cfg.Observer(WindowStat{K: k, Lo: lo, Smooth: len(found), Relations: len(rels), Primes: rows})
		}
		log.Printf("[qs] window k=%d: %d smooth, %d relations over %d rows", k, len(found), len(rels), rows)

		if len(rels) <= rows+1 {
			continue
		}
		f, err := extract(n, rels, cfg)
		if err == nil {
			return f, nil
		}
		if !cfg.RetryDependencies {
			return nil, err
		}
		// otherwise keep widening: more relations mean more
		// dependencies to try next round
	}
	return nil, ErrBudget
}

// windowIndex maps 0, 1, 2, 3, 4, ... to the widening schedule
// 0, 1, -1, 2, -2, ...
func windowIndex(w int) int {
	if w%2 == 1 {
		return (w + 1) / 2
	}
	return -w / 2
}

// sieveWindow log-sieves the t slots starting at lo and returns the
// verified smooth relations.
func (fb *FactorBase) sieveWindow(lo *big.Int, t int) []Relation {
	logRes := make([]float64, t)
	sets := make([]*primeset.Set, t)

	x := new(big.Int).Set(lo)
	f := new(big.Int)
	for i := 0; i < t; i++ {
		f.Mul(x, x).Sub(f, fb.n)
		logRes[i] = lnAbs(f)
		sets[i] = primeset.New()
		sets[i].SetNegative(f.Sign() < 0)
		x.Add(x, one)
	}

	for _, q := range fb.primes {
		p := q.p
		loMod := new(big.Int).Mod(lo, big.NewInt(p)).Int64()
		walk := func(r int64) {
			off := ((r-loMod)%p + p) % p
			for pos := off; pos < int64(t); pos += p {
				logRes[pos] -= q.logp
				sets[pos].Insert(p)
			}
		}
		walk(q.root)
		if p > 2 {
			walk(p - q.root)
		}
	}

	var out []Relation
	x.Set(lo)
	for i := 0; i < t; i++ {
		if logRes[i] < smoothSlack {
			if rel, ok := fb.verify(x, sets[i]); ok {
				out = append(out, rel)
			}
		}
		x.Add(x, one)
	}
	return out
}

// verify replays a candidate slot exactly: x^2 - n divided by the
// sieved primes must come out as +-1 with the recorded sign. Slots the
// float threshold let through erroneously are dropped here.
func (fb *FactorBase) verify(x *big.Int, set *primeset.Set) (Relation, bool) {
	v := new(big.Int).Mul(x, x)
	v.Sub(v, fb.n)
	if (v.Sign() < 0) != set.Negative() {
		return Relation{}, false
	}
	v.Abs(v)
	r := new(big.Int)
	for _, p := range set.Primes() {
		v.QuoRem(v, big.NewInt(p), r)
		if r.Sign() != 0 {
			return Relation{}, false
		}
	}
	if v.Cmp(one) != 0 {
		return Relation{}, false
	}
	return Relation{X: new(big.Int).Set(x), F: set}, true
}

// extract builds the parity matrix over the surviving relations and
// walks dependencies until one splits n.
func extract(n *big.Int, rels []Relation, cfg Config) (*big.Int, error) {
	prs := make(map[int64]struct{})
	for _, r := range rels {
		for _, p := range r.F.Primes() {
			prs[p] = struct{}{}
		}
	}
	order := make([]int64, 0, len(prs))
	for p := range prs {
		order = append(order, p)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	// row 0 is the sign; primes take rows 1..
	rowOf := make(map[int64]int, len(order))
	for i, p := range order {
		rowOf[p] = i + 1
	}
	m := gf2.NewMatrix(len(order)+1, len(rels))
	for j, r := range rels {
		if r.F.Negative() {
			m.Toggle(j, 0)
		}
		for _, p := range r.F.Primes() {
			m.Toggle(j, rowOf[p])
		}
	}

	tries := 1
	if cfg.RetryDependencies {
		tries = maxDependencyTries
	}
	for a := 0; a < tries; a++ {
		key := seed.Derive("qs/nullspace", n, big.NewInt(int64(a)), big.NewInt(int64(len(rels))))
		v, err := gf2.Nullspace(m, key)
		if err != nil {
			return nil, errors.Wrap(err, "qs: relation surplus promised a kernel")
		}
		if f := trySquares(n, rels, v); f != nil {
			return f, nil
		}
	}
	return nil, ErrNoFactor
}

// trySquares turns one dependency into X, Y with X^2 = Y^2 (mod n) and
// returns gcd(X-Y, n) when it is proper, nil otherwise.
func trySquares(n *big.Int, rels []Relation, v *gf2.Vec) *big.Int {
	x := big.NewInt(1)
	counts := make(map[int64]int)
	negs := 0
	for _, j := range v.Ones() {
		x.Mul(x, rels[j].X).Mod(x, n)
		for _, p := range rels[j].F.Primes() {
			counts[p]++
		}
		if rels[j].F.Negative() {
			negs++
		}
	}
	if negs%2 != 0 {
		panic("qs: dependency has odd sign parity")
	}
	y := big.NewInt(1)
	for p, c := range counts {
		if c%2 != 0 {
			panic("qs: dependency has odd prime parity")
		}
		y.Mul(y, bigx.ModExp(big.NewInt(p), big.NewInt(int64(c/2)), n)).Mod(y, n)
	}

	x2 := new(big.Int).Mul(x, x)
	x2.Mod(x2, n)
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, n)
	if x2.Cmp(y2) != 0 {
		panic("qs: X^2 != Y^2 (mod n) after square extraction")
	}

	g := new(big.Int).Sub(x, y)
	g.Abs(g)
	g.GCD(nil, nil, g, n)
	if g.Cmp(one) > 0 && g.Cmp(n) < 0 {
		return g
	}
	return nil
}

// lnAbs approximates log |v| without leaving big precision too early.
func lnAbs(v *big.Int) float64 {
	if v.Sign() == 0 {
		return math.Inf(-1)
	}
	f := new(big.Float).SetInt(v)
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return math.Log(math.Abs(m)) + float64(exp)*math.Ln2
}
