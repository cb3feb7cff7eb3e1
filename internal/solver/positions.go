// internal/solver/positions.go
//
// Positions is a compact set of word positions backed by a single uint64.
// Bit i is set when position i belongs to the set, so words of up to
// MaxLength letters are supported.
//
// All operations are O(1) (or O(bits set) for iteration) and never allocate.

package solver

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// MaxLength is the longest word a Positions set can describe.
const MaxLength = 64

// Positions is a set of positions in [0, MaxLength).
// The zero value is the empty set.
type Positions uint64

// Add inserts pos into the set. Adding an existing position is a no-op.
func (p *Positions) Add(pos int) { *p |= 1 << uint(pos) }

// Remove deletes pos from the set. Removing a missing position is a no-op.
func (p *Positions) Remove(pos int) { *p &^= 1 << uint(pos) }

// Contains reports whether pos is in the set.
func (p Positions) Contains(pos int) bool {
	if pos < 0 || pos >= MaxLength {
		return false
	}
	return p&(1<<uint(pos)) != 0
}

// Intersect returns the positions present in both sets.
func (p Positions) Intersect(other Positions) Positions { return p & other }

// Union returns the positions present in either set.
func (p Positions) Union(other Positions) Positions { return p | other }

// SymmetricDifference returns the positions present in exactly one of the sets.
func (p Positions) SymmetricDifference(other Positions) Positions { return p ^ other }

// Count returns the number of positions in the set.
func (p Positions) Count() int { return bits.OnesCount64(uint64(p)) }

// Empty reports whether the set has no positions.
func (p Positions) Empty() bool { return p == 0 }

// All yields the positions in ascending order.
func (p Positions) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for rest := uint64(p); rest != 0; rest &= rest - 1 {
			if !yield(bits.TrailingZeros64(rest)) {
				return
			}
		}
	}
}

// String renders the set as "{0 2 4}".
func (p Positions) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for pos := range p.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(pos))
	}
	b.WriteByte('}')
	return b.String()
}
