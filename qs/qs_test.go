package qs

import (
	"math/big"
	"testing"

	"github.com/cartazio/arithmoi/primeset"
)

func TestWindowSchedule(t *testing.T) {
	want := []int{0, 1, -1, 2, -2, 3, -3}
	for w, k := range want {
		if windowIndex(w) != k {
			t.Fatalf("windowIndex(%d) = %d, want %d", w, windowIndex(w), k)
		}
	}
}

func TestFactorBase15347(t *testing.T) {
	n := big.NewInt(15347)
	fb, trivial := NewFactorBase(n, 30)
	if trivial != nil {
		t.Fatalf("unexpected trivial factor %s", trivial)
	}
	var ps []int64
	for _, q := range fb.primes {
		ps = append(ps, q.p)
	}
	want := []int64{2, 17, 23, 29}
	if len(ps) != len(want) {
		t.Fatalf("base primes %v, want %v", ps, want)
	}
	for i := range want {
		if ps[i] != want[i] {
			t.Fatalf("base primes %v, want %v", ps, want)
		}
	}
	for _, q := range fb.primes[1:] {
		rr := q.root * q.root % q.p
		nn := new(big.Int).Mod(n, big.NewInt(q.p)).Int64()
		if rr != nn {
			t.Fatalf("root %d of %d: %d^2 = %d != %d", q.root, q.p, q.root, rr, nn)
		}
	}
}

func TestFactorBaseTrivialHit(t *testing.T) {
	// 3 * 9973: the base construction trips over 3
	n := big.NewInt(3 * 9973)
	_, trivial := NewFactorBase(n, 30)
	if trivial == nil || trivial.Int64() != 3 {
		t.Fatalf("want trivial factor 3, got %v", trivial)
	}
}

func TestPruneSingletons(t *testing.T) {
	mk := func(neg bool, ps ...int64) Relation {
		r := Relation{X: big.NewInt(1), F: newSet(neg, ps...)}
		return r
	}
	rels := []Relation{
		mk(false, 2, 17),
		mk(false, 17, 23),
		mk(false, 23, 2),
		mk(false, 41), // singleton 41: dropped
	}
	kept := prune(rels)
	if len(kept) != 3 {
		t.Fatalf("kept %d relations, want 3", len(kept))
	}
	for _, r := range kept {
		if r.F.Has(41) {
			t.Fatal("singleton survived pruning")
		}
	}
}

func TestPruneCascades(t *testing.T) {
	mk := func(ps ...int64) Relation {
		return Relation{X: big.NewInt(1), F: newSet(false, ps...)}
	}
	// dropping the 41-relation makes 23 a singleton, which kills the
	// (23, 2, 17) relation too
	rels := []Relation{
		mk(2, 17),
		mk(17, 2),
		mk(23, 2, 17),
		mk(41, 23),
	}
	kept := prune(rels)
	if len(kept) != 2 {
		t.Fatalf("kept %d relations, want 2", len(kept))
	}
}

func TestFactorRejectsBadInput(t *testing.T) {
	if _, err := Factor(big.NewInt(1000), Config{}); err == nil {
		t.Fatal("even input accepted")
	}
	if _, err := Factor(big.NewInt(10007), Config{}); err == nil {
		t.Fatal("prime input accepted")
	}
	if _, err := Factor(big.NewInt(1), Config{}); err == nil {
		t.Fatal("unit input accepted")
	}
}

func TestFactorPerfectSquare(t *testing.T) {
	n := new(big.Int).Mul(big.NewInt(10007), big.NewInt(10007))
	f, err := Factor(n, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if f.Int64() != 10007 {
		t.Fatalf("square short-circuit returned %s", f)
	}
}

func TestFactorSmallSemiprime(t *testing.T) {
	n := big.NewInt(15347) // 103 * 149
	f, err := Factor(n, Config{B: 30, T: 200})
	if err != nil {
		t.Fatal(err)
	}
	if v := f.Int64(); v != 103 && v != 149 {
		t.Fatalf("factor %s is not 103 or 149", f)
	}
}

func TestObserverSeesWindows(t *testing.T) {
	var ks []int
	cfg := Config{B: 30, T: 200, Observer: func(ws WindowStat) { ks = append(ks, ws.K) }}
	if _, err := Factor(big.NewInt(15347), cfg); err != nil {
		t.Fatal(err)
	}
	if len(ks) == 0 || ks[0] != 0 {
		t.Fatalf("observer windows %v", ks)
	}
}

func newSet(neg bool, ps ...int64) *primeset.Set {
	s := primeset.New()
	s.SetNegative(neg)
	for _, p := range ps {
		s.Insert(p)
	}
	return s
}
