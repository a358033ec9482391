// SPDX-License-Identifier: MIT

package bitlength

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvlbits/intset"
	"github.com/katalvlaran/lvlbits/operator"
)

// EqualityProbeDivisor is the divisor whose residues Equal compares.
const EqualityProbeDivisor uint64 = 32

const panicAlignmentZero = "bitlength: IsAlignedAt: bit length must be >= 1"

// Min returns the shortest reachable length.
func (s *Set) Min() uint64 { return s.root.Min() }

// Max returns the longest reachable length.
func (s *Set) Max() uint64 { return s.root.Max() }

// FixedLength reports whether every value of s has the same length.
func (s *Set) FixedLength() bool { return s.Min() == s.Max() }

// Residues returns every reachable length modulo d, without expansion.
// Returns ErrBadDivisor when d < 1.
func (s *Set) Residues(d uint64) (*intset.Set, error) {
	if d < 1 {
		return nil, fmt.Errorf("residues: %w", ErrBadDivisor)
	}

	return s.root.Modulo(d), nil
}

// Mod returns the residues of s modulo d as a literal Set.
func (s *Set) Mod(d uint64) (*Set, error) {
	r, err := s.Residues(d)
	if err != nil {
		return nil, err
	}
	n, err := operator.NewScalarSet(r)
	if err != nil {
		return nil, err
	}

	return s.derive(n), nil
}

// IsAlignedAt reports whether every reachable length is a multiple of bits.
// Panics when bits is 0.
func (s *Set) IsAlignedAt(bits uint64) bool {
	if bits == 0 {
		panic(panicAlignmentZero)
	}
	r := s.root.Modulo(bits)

	return r.Len() == 1 && r.Has(0)
}

// IsAlignedAtByte is IsAlignedAt(8).
func (s *Set) IsAlignedAtByte() bool { return s.IsAlignedAt(8) }

// Equal is APPROXIMATE: it compares Min, Max and the residues modulo
// EqualityProbeDivisor. Distinct sets that agree on all three compare equal.
// Exact comparison needs Expand on both sides.
func (s *Set) Equal(o *Set) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if s.root == o.root {
		return true
	}

	return s.Min() == o.Min() &&
		s.Max() == o.Max() &&
		s.root.Modulo(EqualityProbeDivisor).Equal(o.root.Modulo(EqualityProbeDivisor))
}

// Hash covers (Min, Max) only, so Equal sets always hash alike.
func (s *Set) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], s.Min())
	binary.LittleEndian.PutUint64(buf[8:], s.Max())

	return xxhash.Sum64(buf[:])
}

// Expand materializes every reachable length. It can be arbitrarily slow
// and exists for tests and layouts known to be small; slow runs are logged.
// Returns ErrExpansionBudgetExceeded when the Config budget runs out.
func (s *Set) Expand() (*intset.Set, error) { return s.root.Expand() }

// Len returns the exact number of reachable lengths. Slow: see Expand.
func (s *Set) Len() (int, error) {
	e, err := s.Expand()
	if err != nil {
		return 0, err
	}

	return e.Len(), nil
}

// All yields every reachable length in ascending order. Slow: see Expand.
func (s *Set) All() (iter.Seq[uint64], error) {
	e, err := s.Expand()
	if err != nil {
		return nil, err
	}

	return e.All(), nil
}
