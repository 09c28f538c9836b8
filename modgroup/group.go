package modgroup

// Package modgroup models the multiplicative groups (Z/mZ)* that are
// cyclic - m in {2, 4, p^k, 2p^k} for an odd prime p - together with
// primitive-root search and discrete logarithms (baby-step giant-step,
// Pollard rho and the Bach reduction from p^k to p).

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/factorint"
)

// Shape classifies the moduli with cyclic unit groups.
type Shape int

const (
	Two Shape = iota
	Four
	OddPrimePower      // p^k, odd prime p, k >= 1
	TwiceOddPrimePower // 2 * p^k
)

// ErrNotCyclic reports a modulus whose unit group is not cyclic.
var ErrNotCyclic = errors.New("modgroup: multiplicative group is not cyclic")

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	four = big.NewInt(4)
)

// CyclicGroup is a classified modulus. P and K are meaningful for the
// two prime-power shapes.
type CyclicGroup struct {
	M     *big.Int
	Shape Shape
	P     *big.Int
	K     int
}

// Classify factors m just enough to decide its shape, rejecting every
// modulus without a primitive root.
func Classify(m *big.Int) (*CyclicGroup, error) {
	if m.Cmp(two) < 0 {
		return nil, errors.Errorf("modgroup: modulus %s below 2", m)
	}
	if m.Cmp(two) == 0 {
		return &CyclicGroup{M: new(big.Int).Set(m), Shape: Two}, nil
	}
	if m.Cmp(four) == 0 {
		return &CyclicGroup{M: new(big.Int).Set(m), Shape: Four}, nil
	}

	odd := new(big.Int).Set(m)
	halved := false
	if odd.Bit(0) == 0 {
		odd.Rsh(odd, 1)
		halved = true
		if odd.Bit(0) == 0 {
			// divisible by 4 and larger than 4
			return nil, ErrNotCyclic
		}
	}
	fac, err := factorint.Factor(odd)
	if err != nil {
		return nil, errors.Wrap(err, "modgroup: factoring modulus")
	}
	if len(fac) != 1 {
		return nil, ErrNotCyclic
	}
	g := &CyclicGroup{M: new(big.Int).Set(m), Shape: OddPrimePower, P: fac[0].P, K: fac[0].E}
	if halved {
		g.Shape = TwiceOddPrimePower
	}
	return g, nil
}

// Ord returns the group order phi(m).
func (g *CyclicGroup) Ord() *big.Int {
	switch g.Shape {
	case Two:
		return big.NewInt(1)
	case Four:
		return big.NewInt(2)
	default:
		// phi(p^k) = (p-1) * p^(k-1), same for 2p^k
		ord := new(big.Int).Exp(g.P, big.NewInt(int64(g.K-1)), nil)
		return ord.Mul(ord, new(big.Int).Sub(g.P, one))
	}
}

// pk returns p^k for the prime-power shapes.
func (g *CyclicGroup) pk() *big.Int {
	return new(big.Int).Exp(g.P, big.NewInt(int64(g.K)), nil)
}

// MultMod is a residue in [0, m) known coprime to m.
type MultMod struct {
	V *big.Int
	M *big.Int
}

// NewMultMod reduces v mod m and checks the unit-group membership.
func NewMultMod(v, m *big.Int) (MultMod, error) {
	r := new(big.Int).Mod(v, m)
	g := new(big.Int).GCD(nil, nil, r, m)
	if g.Cmp(one) != 0 && m.Cmp(one) != 0 {
		return MultMod{}, errors.Errorf("modgroup: %s shares factor %s with modulus %s", v, g, m)
	}
	return MultMod{V: r, M: new(big.Int).Set(m)}, nil
}
