// SPDX-License-Identifier: MIT

package intset

import (
	"iter"
	"strconv"
	"strings"

	"github.com/google/btree"
)

// degree is the B-tree fan-out. Sets here are mostly small (residues < divisor),
// so a modest degree keeps nodes cache-friendly.
const degree = 16

// Set is an ordered set of uint64 values.
// The zero value is not usable; construct with New.
type Set struct {
	t *btree.BTreeG[uint64]
}

// New returns a set holding the given values (duplicates collapse).
func New(values ...uint64) *Set {
	s := &Set{t: btree.NewOrderedG[uint64](degree)}
	for _, v := range values {
		s.t.ReplaceOrInsert(v)
	}

	return s
}

// Range returns the set {lo, lo+1, ..., hi}. An empty set is returned when lo > hi.
func Range(lo, hi uint64) *Set {
	s := New()
	for v := lo; v <= hi; v++ {
		s.t.ReplaceOrInsert(v)
		if v == hi { // hi may be MaxUint64
			break
		}
	}

	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v uint64) bool {
	_, found := s.t.ReplaceOrInsert(v)

	return !found
}

// AddAll inserts every value of o into s.
func (s *Set) AddAll(o *Set) {
	if o == nil {
		return
	}
	o.t.Ascend(func(v uint64) bool {
		s.t.ReplaceOrInsert(v)
		return true
	})
}

// Has reports membership of v.
func (s *Set) Has(v uint64) bool {
	if s == nil {
		return false
	}

	return s.t.Has(v)
}

// Len returns the number of elements.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return s.t.Len()
}

// Empty reports whether the set has no elements.
func (s *Set) Empty() bool { return s.Len() == 0 }

// Min returns the smallest element; ok is false for an empty set.
func (s *Set) Min() (v uint64, ok bool) {
	if s == nil {
		return 0, false
	}

	return s.t.Min()
}

// Max returns the largest element; ok is false for an empty set.
func (s *Set) Max() (v uint64, ok bool) {
	if s == nil {
		return 0, false
	}

	return s.t.Max()
}

// All yields the elements in ascending order.
func (s *Set) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if s == nil {
			return
		}
		s.t.Ascend(yield)
	}
}

// Values returns the elements as an ascending slice.
func (s *Set) Values() []uint64 {
	out := make([]uint64, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

// Clone returns an independent copy. It only reads s, so a set shared by
// several goroutines may be cloned concurrently.
func (s *Set) Clone() *Set {
	out := New()
	out.AddAll(s)

	return out
}

// Union returns a new set holding the elements of s and o.
func (s *Set) Union(o *Set) *Set {
	out := s.Clone()
	out.AddAll(o)

	return out
}

// Map returns {f(v) | v ∈ s}.
func (s *Set) Map(f func(uint64) uint64) *Set {
	out := New()
	for v := range s.All() {
		out.t.ReplaceOrInsert(f(v))
	}

	return out
}

// Equal reports whether s and o hold exactly the same elements.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	eq := true
	s.t.Ascend(func(v uint64) bool {
		eq = o.t.Has(v)
		return eq
	})

	return eq
}

// String renders the set sorted, e.g. "{4,8,12}".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(strconv.FormatUint(v, 10))
	}
	b.WriteByte('}')

	return b.String()
}
