package modgroup

import (
	"math/big"
	"testing"

	"github.com/cartazio/arithmoi/internal/bigx"
)

func classify(t *testing.T, m int64) *CyclicGroup {
	t.Helper()
	g, err := Classify(big.NewInt(m))
	if err != nil {
		t.Fatalf("classify %d: %v", m, err)
	}
	return g
}

func TestClassifyShapes(t *testing.T) {
	if g := classify(t, 2); g.Shape != Two {
		t.Fatal("2 should be shape Two")
	}
	if g := classify(t, 4); g.Shape != Four {
		t.Fatal("4 should be shape Four")
	}
	g := classify(t, 27)
	if g.Shape != OddPrimePower || g.P.Int64() != 3 || g.K != 3 {
		t.Fatalf("27 classified as %+v", g)
	}
	g = classify(t, 26)
	if g.Shape != TwiceOddPrimePower || g.P.Int64() != 13 || g.K != 1 {
		t.Fatalf("26 classified as %+v", g)
	}
	g = classify(t, 250) // 2 * 5^3
	if g.Shape != TwiceOddPrimePower || g.P.Int64() != 5 || g.K != 3 {
		t.Fatalf("250 classified as %+v", g)
	}
	for _, m := range []int64{8, 12, 15, 16, 21, 24, 100} {
		if _, err := Classify(big.NewInt(m)); err == nil {
			t.Fatalf("%d accepted as cyclic", m)
		}
	}
}

func TestOrd(t *testing.T) {
	cases := map[int64]int64{2: 1, 4: 2, 27: 18, 26: 12, 250: 100, 13: 12}
	for m, want := range cases {
		if got := classify(t, m).Ord().Int64(); got != want {
			t.Fatalf("ord(%d) = %d, want %d", m, got, want)
		}
	}
}

func TestPrimitiveRoots(t *testing.T) {
	g13 := classify(t, 13)
	if !IsPrimitiveRoot(big.NewInt(2), g13) {
		t.Fatal("2 generates (Z/13Z)*")
	}
	if IsPrimitiveRoot(big.NewInt(3), g13) {
		t.Fatal("3 has order 3 mod 13")
	}
	r, err := FindPrimitiveRoot(g13)
	if err != nil {
		t.Fatal(err)
	}
	if r.V.Int64() != 2 {
		t.Fatalf("smallest root mod 13 is 2, got %s", r.V)
	}

	// 2p^k roots must be odd
	g26 := classify(t, 26)
	if IsPrimitiveRoot(big.NewInt(2), g26) {
		t.Fatal("even residue accepted mod 26")
	}
	if !IsPrimitiveRoot(big.NewInt(7), g26) {
		t.Fatal("7 generates (Z/26Z)*")
	}
}

func TestDLogScenario13(t *testing.T) {
	g := classify(t, 13)
	a, err := NewPrimitiveRoot(big.NewInt(2), g)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewMultMod(big.NewInt(11), g.M)
	if err != nil {
		t.Fatal(err)
	}
	e, err := DLog(a, b, DLogConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if e.Int64() != 7 {
		t.Fatalf("dlog_2(11) mod 13 = %s, want 7", e)
	}
}

func TestDLogTrivialShapes(t *testing.T) {
	g2 := classify(t, 2)
	a2, _ := NewPrimitiveRoot(big.NewInt(1), g2)
	b2, _ := NewMultMod(big.NewInt(1), g2.M)
	if e, err := DLog(a2, b2, DLogConfig{}); err != nil || e.Sign() != 0 {
		t.Fatalf("dlog mod 2: %v %v", e, err)
	}

	g4 := classify(t, 4)
	a4, _ := NewPrimitiveRoot(big.NewInt(3), g4)
	for b, want := range map[int64]int64{1: 0, 3: 1} {
		bb, _ := NewMultMod(big.NewInt(b), g4.M)
		e, err := DLog(a4, bb, DLogConfig{})
		if err != nil || e.Int64() != want {
			t.Fatalf("dlog_3(%d) mod 4 = %v (%v), want %d", b, e, err, want)
		}
	}
}

func TestDLogBachReduction(t *testing.T) {
	// 3 is a primitive root mod 7 and lifts to every 7^k
	g := classify(t, 343)
	a, err := NewPrimitiveRoot(big.NewInt(3), g)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []int64{0, 1, 2, 17, 100, 293} {
		bv := bigx.ModExp(big.NewInt(3), big.NewInt(want), g.M)
		b, _ := NewMultMod(bv, g.M)
		e, err := DLog(a, b, DLogConfig{})
		if err != nil {
			t.Fatal(err)
		}
		if e.Int64() != want {
			t.Fatalf("dlog_3(3^%d) mod 343 = %s", want, e)
		}
	}
}

func TestDLogTwiceOddPrimePower(t *testing.T) {
	g := classify(t, 250)
	a, err := FindPrimitiveRoot(g)
	if err != nil {
		t.Fatal(err)
	}
	ord := g.Ord()
	for _, want := range []int64{0, 1, 9, 42, 99} {
		bv := bigx.ModExp(a.V, big.NewInt(want), g.M)
		b, _ := NewMultMod(bv, g.M)
		e, err := DLog(a, b, DLogConfig{})
		if err != nil {
			t.Fatal(err)
		}
		if new(big.Int).Mod(e, ord).Int64() != want {
			t.Fatalf("dlog(%s^%d) mod 250 = %s", a.V, want, e)
		}
	}
}

func TestDLogRoundTrip(t *testing.T) {
	// property: a^dlog(a, b) = b across shapes
	for _, m := range []int64{9, 13, 25, 26, 27, 49, 121, 343} {
		g := classify(t, m)
		a, err := FindPrimitiveRoot(g)
		if err != nil {
			t.Fatal(err)
		}
		for bv := int64(1); bv < m; bv++ {
			if new(big.Int).GCD(nil, nil, big.NewInt(bv), g.M).Int64() != 1 {
				continue
			}
			b, _ := NewMultMod(big.NewInt(bv), g.M)
			e, err := DLog(a, b, DLogConfig{})
			if err != nil {
				t.Fatalf("dlog mod %d of %d: %v", m, bv, err)
			}
			if bigx.ModExp(a.V, e, g.M).Cmp(b.V) != 0 {
				t.Fatalf("mod %d: %s^%s != %d", m, a.V, e, bv)
			}
		}
	}
}

func TestBSGSSmallest(t *testing.T) {
	// exponent 0 must come back for b = 1
	if e := bsgs(13, 2, 1); e != 0 {
		t.Fatalf("bsgs(13,2,1) = %d", e)
	}
	if e := bsgs(13, 2, 2); e != 1 {
		t.Fatalf("bsgs(13,2,2) = %d", e)
	}
}
