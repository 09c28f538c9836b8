package sieve

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/gf2"
	"github.com/cartazio/arithmoi/internal/bigx"
)

// Segment is the sieve-of-Atkin result for one range. It keeps one
// bit-vector per wheel class: bit k of class j means that
// 60*(base/60 + k) + Wheel60[j] is prime. The vectors are mutated only
// during construction; a returned Segment is frozen.
type Segment struct {
	lo, hi int64 // requested range [lo, hi)
	base   int64 // lo rounded down to a multiple of 60
	top    int64 // sieved upper bound, multiple of 60
	bits   int   // length of each class vector
	class  [16]*gf2.Vec
}

// Atkin sieves the range [lo, lo+length) and returns the frozen
// segment. lo is rounded down to a multiple of 60 internally; the
// enumeration in PrimeList clips back to the requested range.
func Atkin(lo, length int64) (*Segment, error) {
	if lo < 0 {
		return nil, errors.Errorf("sieve: negative low bound %d", lo)
	}
	if length <= 0 {
		return nil, errors.Errorf("sieve: non-positive segment length %d", length)
	}
	s := &Segment{lo: lo, hi: lo + length}
	s.base = lo - lo%60
	s.bits = int((s.hi - s.base + 59) / 60)
	s.top = s.base + 60*int64(s.bits)
	for j := range s.class {
		s.class[j] = gf2.NewVec(s.bits)
	}

	for j, delta := range Wheel60 {
		switch {
		case delta%4 == 1:
			s.toggleQuadA(j, delta)
		case delta%6 == 1:
			s.toggleQuadB(j, delta)
		default: // delta = 11 (mod 12)
			s.toggleQuadC(j, delta)
		}
	}
	s.crossOutSquares()
	return s, nil
}

func (s *Segment) flip(j int, n int64) {
	s.class[j].Flip(int((n - s.base) / 60))
}

// toggleQuadA flips parity for every 4x^2 + y^2 = n with n = delta
// (mod 60) in range. Base solutions (f, g) run over [1,15]x[1,30]: the
// form is invariant under x += 15 and y += 30, so those classes tile
// all lattice points exactly once.
func (s *Segment) toggleQuadA(j int, delta int64) {
	for f := int64(1); f <= 15; f++ {
		for g := int64(1); g <= 30; g++ {
			if (4*f*f+g*g)%60 != delta {
				continue
			}
			for x := f; 4*x*x < s.top; x += 15 {
				c := 4 * x * x
				for y := riseTo(g, 30, c, s.base); ; y += 30 {
					n := c + y*y
					if n >= s.top {
						break
					}
					if n >= s.base {
						s.flip(j, n)
					}
				}
			}
		}
	}
}

// toggleQuadB is the 3x^2 + y^2 case. The x period of the form mod 60
// is 10, so base solutions run over [1,10]x[1,30].
func (s *Segment) toggleQuadB(j int, delta int64) {
	for f := int64(1); f <= 10; f++ {
		for g := int64(1); g <= 30; g++ {
			if (3*f*f+g*g)%60 != delta {
				continue
			}
			for x := f; 3*x*x < s.top; x += 10 {
				c := 3 * x * x
				for y := riseTo(g, 30, c, s.base); ; y += 30 {
					n := c + y*y
					if n >= s.top {
						break
					}
					if n >= s.base {
						s.flip(j, n)
					}
				}
			}
		}
	}
}

// toggleQuadC is the 3x^2 - y^2 case, restricted to x > y >= 1. Values
// fall as y grows, so the enumeration walks y upward until it drops
// below the segment.
func (s *Segment) toggleQuadC(j int, delta int64) {
	for f := int64(1); f <= 10; f++ {
		for g := int64(1); g <= 30; g++ {
			if mod60(3*f*f-g*g) != delta {
				continue
			}
			for x := f; 2*x*x+2*x-1 < s.top; x += 10 {
				c := 3 * x * x
				if c-1 < s.base {
					// even y = 1 stays below the segment
					continue
				}
				// first y with n < top
				y := g
				if c-s.top >= 0 {
					y = riseTo(g, 30, 0, c-s.top+1)
				}
				for ; y < x; y += 30 {
					n := c - y*y
					if n < s.base {
						break
					}
					if n < s.top {
						s.flip(j, n)
					}
				}
			}
		}
	}
}

// crossOutSquares clears every n in the segment divisible by p^2 for a
// seed prime 7 <= p <= sqrt(top). The first crossed index per class is
// the chinese-remainder combination of n = delta (mod 60) with
// n = 0 (mod p^2).
func (s *Segment) crossOutSquares() {
	pmax := isqrt(s.top - 1)
	sixty := big.NewInt(60)
	for _, p := range Eratosthenes(pmax + 1) {
		if p < 7 {
			continue
		}
		pp := p * p
		step := 60 * pp
		for j, delta := range Wheel60 {
			n0, _, ok := bigx.CRT(big.NewInt(delta), sixty, big.NewInt(0), big.NewInt(pp))
			if !ok {
				// gcd(60, p^2) = 1 for p >= 7
				panic("sieve: cross-out congruence unsolvable")
			}
			n := n0.Int64()
			if n < s.base {
				n += (s.base - n + step - 1) / step * step
			}
			for ; n < s.top; n += step {
				s.class[j].Clear(int((n - s.base) / 60))
			}
		}
	}
}

// PrimeList enumerates the primes in the requested range in ascending
// order. 2, 3 and 5 are not wheel residues and are prepended when the
// range covers them.
func (s *Segment) PrimeList() []int64 {
	var out []int64
	for _, sp := range []int64{2, 3, 5} {
		if sp >= s.lo && sp < s.hi {
			out = append(out, sp)
		}
	}
	for k := 0; k < s.bits; k++ {
		for j, delta := range Wheel60 {
			if !s.class[j].Bit(k) {
				continue
			}
			n := s.base + 60*int64(k) + delta
			if n >= s.lo && n < s.hi {
				out = append(out, n)
			}
		}
	}
	return out
}

// riseTo returns the smallest y = g (mod step), y >= g, such that
// c + y^2 can reach lo.
func riseTo(g, step, c, lo int64) int64 {
	if c+g*g >= lo {
		return g
	}
	r := isqrt(lo - c)
	if r*r < lo-c {
		r++
	}
	if r <= g {
		return g
	}
	return g + (r-g+step-1)/step*step
}

func mod60(v int64) int64 {
	v %= 60
	if v < 0 {
		v += 60
	}
	return v
}

func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
