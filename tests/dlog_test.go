package tests

import (
	"math/big"
	"testing"

	"github.com/cartazio/arithmoi/internal/bigx"
	"github.com/cartazio/arithmoi/modgroup"
)

// exponentiation after a discrete log must recover the target, across
// every cyclic shape
func TestDLogRoundTripShapes(t *testing.T) {
	for _, m := range []int64{2, 4, 13, 26, 27, 243, 2 * 343} {
		g, err := modgroup.Classify(big.NewInt(m))
		if err != nil {
			t.Fatalf("classify %d: %v", m, err)
		}
		a, err := modgroup.FindPrimitiveRoot(g)
		if err != nil {
			t.Fatal(err)
		}
		for _, ev := range []int64{0, 1, 5, 11} {
			e := new(big.Int).Mod(big.NewInt(ev), g.Ord())
			bv := bigx.ModExp(a.V, e, g.M)
			b, err := modgroup.NewMultMod(bv, g.M)
			if err != nil {
				t.Fatal(err)
			}
			got, err := modgroup.DLog(a, b, modgroup.DLogConfig{})
			if err != nil {
				t.Fatalf("dlog mod %d: %v", m, err)
			}
			if bigx.ModExp(a.V, got, g.M).Cmp(bv) != 0 {
				t.Fatalf("mod %d: %s^%s != %s", m, a.V, got, bv)
			}
		}
	}
}

// a prime above the BSGS threshold forces the rho walk
func TestDLogPollardRho(t *testing.T) {
	p := big.NewInt(100000007)
	g, err := modgroup.Classify(p)
	if err != nil {
		t.Fatal(err)
	}
	a, err := modgroup.FindPrimitiveRoot(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range []int64{1, 12345, 99999999} {
		bv := bigx.ModExp(a.V, big.NewInt(ev), g.M)
		b, _ := modgroup.NewMultMod(bv, g.M)
		e, err := modgroup.DLog(a, b, modgroup.DLogConfig{BSGSLimit: 1000})
		if err != nil {
			t.Fatal(err)
		}
		if bigx.ModExp(a.V, e, g.M).Cmp(bv) != 0 {
			t.Fatalf("rho dlog of %s came back wrong: %s", bv, e)
		}
	}
}
