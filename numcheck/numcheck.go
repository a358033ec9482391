// SPDX-License-Identifier: MIT

package numcheck

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/lvlbits/intset"
)

var (
	// ErrMismatch indicates that an analytical result disagrees with the expansion.
	ErrMismatch = errors.New("numcheck: analytical result does not match expansion")

	// ErrEmptyExpansion indicates that the expansion produced no values,
	// which no well-formed length set can do.
	ErrEmptyExpansion = errors.New("numcheck: expansion is empty")

	// ErrBadDivisor indicates a zero divisor in the probe list.
	ErrBadDivisor = errors.New("numcheck: divisor must be >= 1")
)

// Analyzer is the analytical side of a length set.
type Analyzer interface {
	Min() uint64
	Max() uint64
	Modulo(divisor uint64) *intset.Set
}

// Expander is an Analyzer that can also produce its exact value set.
type Expander interface {
	Analyzer
	Expand() (*intset.Set, error)
}

// maxDivisorsPrealloc caps the capacity Divisors reserves up front.
const maxDivisorsPrealloc = 1 << 12

// Divisors returns lo, lo+1, ..., hi. A zero lo is bumped to 1.
func Divisors(lo, hi uint64) []uint64 {
	if lo == 0 {
		lo = 1
	}
	if lo > hi {
		return nil
	}
	out := make([]uint64, 0, min(hi-lo, maxDivisorsPrealloc)+1)
	for d := lo; ; d++ {
		out = append(out, d)
		if d == hi { // hi may be MaxUint64
			break
		}
	}

	return out
}

// Validate compares a against the exact expansion for min, max and every
// divisor given. It returns nil when everything agrees.
//
// Errors:
//   - ErrEmptyExpansion if expansion has no values.
//   - ErrBadDivisor if a divisor is zero.
//   - ErrMismatch (wrapped with the offending quantity) on disagreement.
func Validate(a Analyzer, expansion *intset.Set, divisors ...uint64) error {
	lo, ok := expansion.Min()
	if !ok {
		return ErrEmptyExpansion
	}
	hi, _ := expansion.Max()

	if got := a.Min(); got != lo {
		return fmt.Errorf("min: analytical %d, numerical %d: %w", got, lo, ErrMismatch)
	}
	if got := a.Max(); got != hi {
		return fmt.Errorf("max: analytical %d, numerical %d: %w", got, hi, ErrMismatch)
	}

	for _, d := range divisors {
		if d == 0 {
			return ErrBadDivisor
		}
		want := Residues(expansion, d)
		got := a.Modulo(d)
		if !got.Equal(want) {
			diff := cmp.Diff(want.Values(), got.Values())
			return fmt.Errorf("modulo %d (-numerical +analytical):\n%s: %w", d, diff, ErrMismatch)
		}
	}

	return nil
}

// Run expands e and validates it for divisors 1..maxDivisor.
func Run(e Expander, maxDivisor uint64) error {
	expansion, err := e.Expand()
	if err != nil {
		return fmt.Errorf("numcheck: expand: %w", err)
	}

	return Validate(e, expansion, Divisors(1, maxDivisor)...)
}

// Residues returns { x mod d | x ∈ values }. d must be non-zero.
func Residues(values *intset.Set, d uint64) *intset.Set {
	return values.Map(func(x uint64) uint64 { return x % d })
}
