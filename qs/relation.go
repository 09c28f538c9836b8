package qs

import (
	"math/big"

	"github.com/cartazio/arithmoi/primeset"
)

// Relation records a smooth slot: X^2 - n factors over the base as
// sign * product of the primes in F, every exponent reduced mod 2.
type Relation struct {
	X *big.Int
	F *primeset.Set
}

// prune repeatedly drops relations holding a prime that occurs in only
// one surviving relation. Such singleton primes can never cancel in a
// dependency, so their relations are dead weight for the solver.
func prune(rels []Relation) []Relation {
	for {
		count := make(map[int64]int)
		for _, r := range rels {
			for _, p := range r.F.Primes() {
				count[p]++
			}
		}
		kept := rels[:0]
		dropped := false
		for _, r := range rels {
			alive := true
			for _, p := range r.F.Primes() {
				if count[p] == 1 {
					alive = false
					break
				}
			}
			if alive {
				kept = append(kept, r)
			} else {
				dropped = true
			}
		}
		rels = kept
		if !dropped {
			return rels
		}
	}
}

// parityRows counts the distinct rows the retained relations span: one
// per distinct prime, plus the sign row when any relation is negative.
func parityRows(rels []Relation) int {
	primes := make(map[int64]struct{})
	neg := false
	for _, r := range rels {
		for _, p := range r.F.Primes() {
			primes[p] = struct{}{}
		}
		neg = neg || r.F.Negative()
	}
	n := len(primes)
	if neg {
		n++
	}
	return n
}
