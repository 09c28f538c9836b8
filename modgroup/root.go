package modgroup

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/factorint"
	"github.com/cartazio/arithmoi/internal/bigx"
)

// PrimitiveRoot wraps a unit known to generate the whole group.
type PrimitiveRoot struct {
	MultMod
	Group *CyclicGroup
}

// IsPrimitiveRoot tests whether r generates (Z/mZ)*: r must survive
// r^((p-1)/q) != 1 (mod p) for every prime q dividing p-1, for k >= 2
// additionally r^(p-1) != 1 (mod p^2), and for 2p^k must be odd.
func IsPrimitiveRoot(r *big.Int, g *CyclicGroup) bool {
	v := new(big.Int).Mod(r, g.M)
	switch g.Shape {
	case Two:
		return v.Cmp(one) == 0
	case Four:
		return v.Int64() == 3
	case TwiceOddPrimePower:
		if v.Bit(0) == 0 {
			return false
		}
	}

	p := g.P
	if new(big.Int).Mod(v, p).Sign() == 0 {
		return false
	}
	pm1 := new(big.Int).Sub(p, one)
	fac, err := factorint.Factor(pm1)
	if err != nil {
		return false
	}
	for _, q := range fac {
		e := new(big.Int).Quo(pm1, q.P)
		if bigx.ModExp(v, e, p).Cmp(one) == 0 {
			return false
		}
	}
	if g.K >= 2 {
		p2 := new(big.Int).Mul(p, p)
		if bigx.ModExp(v, pm1, p2).Cmp(one) == 0 {
			return false
		}
	}
	return true
}

// NewPrimitiveRoot validates r against the group.
func NewPrimitiveRoot(r *big.Int, g *CyclicGroup) (PrimitiveRoot, error) {
	u, err := NewMultMod(r, g.M)
	if err != nil {
		return PrimitiveRoot{}, err
	}
	if !IsPrimitiveRoot(u.V, g) {
		return PrimitiveRoot{}, errors.Errorf("modgroup: %s does not generate (Z/%sZ)*", u.V, g.M)
	}
	return PrimitiveRoot{MultMod: u, Group: g}, nil
}

// FindPrimitiveRoot searches the smallest generator. For the
// prime-power shapes a root mod p lifts to p^k after at most one
// correction, so the scan terminates quickly.
func FindPrimitiveRoot(g *CyclicGroup) (PrimitiveRoot, error) {
	switch g.Shape {
	case Two:
		return NewPrimitiveRoot(one, g)
	case Four:
		return NewPrimitiveRoot(big.NewInt(3), g)
	}
	for r := big.NewInt(2); r.Cmp(g.M) < 0; r.Add(r, one) {
		if new(big.Int).GCD(nil, nil, r, g.M).Cmp(one) != 0 {
			continue
		}
		if IsPrimitiveRoot(r, g) {
			return NewPrimitiveRoot(r, g)
		}
	}
	return PrimitiveRoot{}, errors.Errorf("modgroup: no generator below %s", g.M)
}
