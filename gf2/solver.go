package gf2

import (
	"github.com/pkg/errors"

	"github.com/cartazio/arithmoi/internal/seed"
)

// ErrNoKernel is returned when the matrix has full column rank and
// therefore only the trivial kernel.
var ErrNoKernel = errors.New("gf2: matrix has no nontrivial kernel")

// Nullspace returns a nonzero vector v with M*v = 0. The elimination
// order is shuffled by a PRNG keyed with the caller's seed, so the run
// is deterministic per seed while distinct seeds tend to surface
// distinct dependencies. Whenever the column count exceeds the number
// of distinct rows that appear, a kernel vector exists and is found.
func Nullspace(m *Matrix, key []byte) (*Vec, error) {
	order := make([]int, m.Cols())
	for i := range order {
		order[i] = i
	}
	prng := seed.NewPRNG(key)
	for i := len(order) - 1; i > 0; i-- {
		j := int(seed.Int63n(prng, int64(i+1)))
		order[i], order[j] = order[j], order[i]
	}

	// Structured elimination: reduce each column against the pivots
	// accumulated so far, tracking the column combination that
	// produced it. A column that reduces to zero hands back its
	// combination as the kernel vector.
	type pivot struct {
		rows *Vec
		comb *Vec
	}
	pivots := make(map[int]pivot)

	for _, j := range order {
		rows := m.Column(j)
		comb := NewVec(m.Cols())
		comb.Set(j)
		for {
			r := rows.FirstOne()
			if r < 0 {
				return comb, nil
			}
			pv, ok := pivots[r]
			if !ok {
				pivots[r] = pivot{rows: rows, comb: comb}
				break
			}
			rows.Xor(pv.rows)
			comb.Xor(pv.comb)
		}
	}
	return nil, ErrNoKernel
}
