package eisenstein

// Package eisenstein implements arithmetic in Z[w], the ring of
// Eisenstein integers a + b*w with w a primitive cube root of unity
// (w^2 = -1 - w). It provides the ring operations, two Euclidean
// division flavours, canonical associates, primality and a full
// factorisation into primary primes.

import (
	"fmt"
	"math/big"
)

var (
	bigZero  = big.NewInt(0)
	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)
)

// Int is the Eisenstein integer A + B*w.
type Int struct {
	A, B *big.Int
}

// New copies its arguments into an Int.
func New(a, b *big.Int) Int {
	return Int{A: new(big.Int).Set(a), B: new(big.Int).Set(b)}
}

// FromInt64 builds an Int from machine words.
func FromInt64(a, b int64) Int {
	return Int{A: big.NewInt(a), B: big.NewInt(b)}
}

// Zero returns 0.
func Zero() Int { return FromInt64(0, 0) }

// One returns 1.
func One() Int { return FromInt64(1, 0) }

// Add returns z + u.
func (z Int) Add(u Int) Int {
	return Int{A: new(big.Int).Add(z.A, u.A), B: new(big.Int).Add(z.B, u.B)}
}

// Sub returns z - u.
func (z Int) Sub(u Int) Int {
	return Int{A: new(big.Int).Sub(z.A, u.A), B: new(big.Int).Sub(z.B, u.B)}
}

// Neg returns -z.
func (z Int) Neg() Int {
	return Int{A: new(big.Int).Neg(z.A), B: new(big.Int).Neg(z.B)}
}

// Mul returns z * u: (a+bw)(c+dw) = (ac - bd) + (bc + ad - bd)w.
func (z Int) Mul(u Int) Int {
	ac := new(big.Int).Mul(z.A, u.A)
	bd := new(big.Int).Mul(z.B, u.B)
	bc := new(big.Int).Mul(z.B, u.A)
	ad := new(big.Int).Mul(z.A, u.B)
	return Int{
		A: new(big.Int).Sub(ac, bd),
		B: bc.Add(bc, ad).Sub(bc, bd),
	}
}

// Conj returns the complex conjugate (a-b) - b*w.
func (z Int) Conj() Int {
	return Int{A: new(big.Int).Sub(z.A, z.B), B: new(big.Int).Neg(z.B)}
}

// Norm returns a^2 - a*b + b^2, which is multiplicative and zero only
// at zero.
func (z Int) Norm() *big.Int {
	aa := new(big.Int).Mul(z.A, z.A)
	ab := new(big.Int).Mul(z.A, z.B)
	bb := new(big.Int).Mul(z.B, z.B)
	return aa.Sub(aa, ab).Add(aa, bb)
}

// Equal reports componentwise equality.
func (z Int) Equal(u Int) bool {
	return z.A.Cmp(u.A) == 0 && z.B.Cmp(u.B) == 0
}

// IsZero reports z == 0.
func (z Int) IsZero() bool {
	return z.A.Sign() == 0 && z.B.Sign() == 0
}

// IsUnit reports norm one.
func (z Int) IsUnit() bool {
	return z.Norm().Cmp(bigOne) == 0
}

// Units returns the six units: the powers of 1 + w, which is a
// primitive sixth root of unity.
func Units() [6]Int {
	u := FromInt64(1, 1)
	out := [6]Int{One()}
	for i := 1; i < 6; i++ {
		out[i] = out[i-1].Mul(u)
	}
	return out
}

// String renders a + b*w compactly, e.g. "2+w", "-1-2w".
func (z Int) String() string {
	if z.B.Sign() == 0 {
		return z.A.String()
	}
	var bs string
	switch {
	case z.B.Cmp(bigOne) == 0:
		bs = "+w"
	case z.B.Cmp(big.NewInt(-1)) == 0:
		bs = "-w"
	case z.B.Sign() > 0:
		bs = fmt.Sprintf("+%sw", z.B)
	default:
		bs = fmt.Sprintf("%sw", z.B)
	}
	if z.A.Sign() == 0 {
		if bs[0] == '+' {
			return bs[1:]
		}
		return bs
	}
	return z.A.String() + bs
}
