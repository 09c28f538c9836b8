package eisenstein

import (
	"math/big"
	"sort"

	"github.com/cartazio/arithmoi/sieve"
)

// Sequence is a pull iterator over the canonical primes of Z[w] in
// ascending norm order, up to a caller-fixed norm bound. Two streams
// are merged: norm-p entries from the split and ramified rational
// primes, and norm-p^2 entries from the inert ones. Within one norm
// the left prime of a split pair precedes its conjugate.
type Sequence struct {
	limit   int64
	src     *sieve.Source
	srcNext int64
	srcDone bool
	pending []seqEntry
}

type seqEntry struct {
	norm int64
	z    Int
}

// Primes enumerates the primes with norm at most limit.
func Primes(limit int64) *Sequence {
	s := &Sequence{limit: limit, src: sieve.NewSource(limit + 1)}
	s.srcNext, s.srcDone = s.pull()
	return s
}

func (s *Sequence) pull() (int64, bool) {
	p, ok := s.src.Next()
	return p, !ok
}

// Next returns the next prime, or false when the norm bound is
// passed. A pending entry is safe to emit once its norm no longer
// exceeds the next unconsumed rational prime: later entries can only
// have norm >= that prime.
func (s *Sequence) Next() (Int, bool) {
	for {
		if len(s.pending) > 0 && (s.srcDone || s.pending[0].norm <= s.srcNext) {
			e := s.pending[0]
			s.pending = s.pending[1:]
			return e.z, true
		}
		if s.srcDone {
			return Int{}, false
		}
		s.consume(s.srcNext)
		s.srcNext, s.srcDone = s.pull()
	}
}

func (s *Sequence) consume(p int64) {
	switch p % 3 {
	case 0: // p = 3
		if s.limit >= 3 {
			s.push(seqEntry{norm: 3, z: FromInt64(2, 1)})
		}
	case 2:
		if p <= s.limit/p {
			s.push(seqEntry{norm: p * p, z: FromInt64(p, 0)})
		}
	default:
		if p > s.limit {
			return
		}
		fp, err := FindPrime(big.NewInt(p))
		if err != nil {
			panic(err) // p comes from the sieve, so it is prime
		}
		pi, ok := Primary(fp)
		if !ok {
			panic("eisenstein: split prime without a primary associate")
		}
		piBar, _ := Primary(pi.Conj())
		s.push(seqEntry{norm: p, z: pi})
		s.push(seqEntry{norm: p, z: piBar})
	}
}

func (s *Sequence) push(e seqEntry) {
	i := sort.Search(len(s.pending), func(i int) bool { return s.pending[i].norm > e.norm })
	s.pending = append(s.pending, seqEntry{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = e
}
