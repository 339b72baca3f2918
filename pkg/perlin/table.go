// Package perlin evaluates seeded 2D gradient noise.
package perlin

import "perlinmap/pkg/core"

const (
	// Period is the lattice period on each axis.
	Period = 256
	// TableSize is the length of the doubled lookup table.
	TableSize = 2 * Period
)

// Table is the doubled permutation used for gradient selection. It is
// immutable once built and may be shared by any number of goroutines.
type Table struct {
	seed int64
	p    [TableSize]int
}

// BuildTable shuffles 0..255 with the seeded RNG and doubles the result.
//
// Every draw spans the full [0,255] range rather than [0,i], matching the
// classic reference program. The result is still a permutation since each
// step is a swap.
func BuildTable(seed int64) *Table {
	var perm [Period]int
	for i := range perm {
		perm[i] = i
	}

	rng := core.NewRNG(seed)
	for i := 0; i < Period; i++ {
		r := rng.IntN(Period)
		perm[i], perm[r] = perm[r], perm[i]
	}

	t := &Table{seed: seed}
	for i := range t.p {
		t.p[i] = perm[i%Period]
	}
	return t
}

// Seed returns the seed the table was built from.
func (t *Table) Seed() int64 { return t.seed }

// At returns the table entry at i, for i in [0, TableSize).
func (t *Table) At(i int) int { return t.p[i] }

// Values returns a copy of all TableSize entries.
func (t *Table) Values() []int {
	out := make([]int, TableSize)
	copy(out, t.p[:])
	return out
}
