package sieve

// Source is a pull iterator over the primes below a caller-fixed
// bound, produced segment by segment. It is the finite stand-in for an
// infinite prime stream: the bound is explicit and Next reports
// exhaustion.
type Source struct {
	limit int64
	span  int64
	next  int64
	batch []int64
	pos   int
}

// NewSource returns a prime source for [2, limit).
func NewSource(limit int64) *Source {
	return &Source{limit: limit, span: 60 * 4096}
}

// Next returns the next prime in ascending order, or false once the
// bound is reached.
func (s *Source) Next() (int64, bool) {
	for s.pos >= len(s.batch) {
		if s.next >= s.limit {
			return 0, false
		}
		length := s.span
		if s.next+length > s.limit {
			length = s.limit - s.next
		}
		seg, err := Atkin(s.next, length)
		if err != nil {
			// bounds are maintained internally
			panic(err)
		}
		s.batch = seg.PrimeList()
		s.pos = 0
		s.next += length
	}
	p := s.batch[s.pos]
	s.pos++
	return p, true
}
