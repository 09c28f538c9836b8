package factorint

import (
	"math/big"
	"testing"

	"github.com/cartazio/arithmoi/qs"
)

func check(t *testing.T, n int64, want map[int64]int) {
	t.Helper()
	fs, err := Factor(big.NewInt(n))
	if err != nil {
		t.Fatalf("factor %d: %v", n, err)
	}
	got := map[int64]int{}
	rebuild := big.NewInt(1)
	last := big.NewInt(0)
	for _, pp := range fs {
		if pp.P.Cmp(last) <= 0 {
			t.Fatalf("factor %d: primes not ascending: %v", n, fs)
		}
		last = pp.P
		if !pp.P.ProbablyPrime(64) {
			t.Fatalf("factor %d: %s is not prime", n, pp.P)
		}
		got[pp.P.Int64()] = pp.E
		rebuild.Mul(rebuild, new(big.Int).Exp(pp.P, big.NewInt(int64(pp.E)), nil))
	}
	if rebuild.Int64() != n {
		t.Fatalf("factor %d: rebuild gave %s", n, rebuild)
	}
	if want != nil {
		for p, e := range want {
			if got[p] != e {
				t.Fatalf("factor %d = %v, want exponent %d at %d", n, got, e, p)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("factor %d = %v, want %v", n, got, want)
		}
	}
}

func TestFactorSmall(t *testing.T) {
	check(t, 360, map[int64]int{2: 3, 3: 2, 5: 1})
	check(t, 1024, map[int64]int{2: 10})
	check(t, 97, map[int64]int{97: 1})
	check(t, 2, map[int64]int{2: 1})
	check(t, 2*104729, nil)
}

func TestFactorOne(t *testing.T) {
	fs, err := Factor(big.NewInt(1))
	if err != nil || len(fs) != 0 {
		t.Fatalf("factor 1 = %v (%v)", fs, err)
	}
}

func TestFactorRejectsNonPositive(t *testing.T) {
	if _, err := Factor(big.NewInt(0)); err == nil {
		t.Fatal("0 accepted")
	}
	if _, err := Factor(big.NewInt(-12)); err == nil {
		t.Fatal("negative accepted")
	}
}

func TestFactorSemiprimeRho(t *testing.T) {
	// both factors above the trial-division seed
	p := big.NewInt(1000003)
	q := big.NewInt(999983)
	n := new(big.Int).Mul(p, q)
	fs, err := Factor(n)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 2 || fs[0].P.Cmp(q) != 0 || fs[1].P.Cmp(p) != 0 {
		t.Fatalf("factor %s = %v", n, fs)
	}
}

func TestFactorPerfectSquare(t *testing.T) {
	p := big.NewInt(1000003)
	n := new(big.Int).Mul(p, p)
	fs, err := Factor(n)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 1 || fs[0].E != 2 || fs[0].P.Cmp(p) != 0 {
		t.Fatalf("factor %s = %v", n, fs)
	}
}

func TestFactorWithQS(t *testing.T) {
	// both factors above the trial-division seed, so the sieve does
	// the splitting
	p := big.NewInt(65537)
	q := big.NewInt(65539)
	n := new(big.Int).Mul(p, q)
	fs, err := FactorWithQS(n, qs.Config{B: 2000, T: 20000})
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 2 || fs[0].P.Cmp(p) != 0 || fs[1].P.Cmp(q) != 0 {
		t.Fatalf("factor %s = %v", n, fs)
	}
}
