// SPDX-License-Identifier: MIT
package numcheck_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbits/intset"
	"github.com/katalvlaran/lvlbits/numcheck"
)

// literal is an honest Analyzer over an explicit set.
type literal struct{ values *intset.Set }

func (l literal) Min() uint64 { v, _ := l.values.Min(); return v }
func (l literal) Max() uint64 { v, _ := l.values.Max(); return v }
func (l literal) Modulo(d uint64) *intset.Set {
	return numcheck.Residues(l.values, d)
}
func (l literal) Expand() (*intset.Set, error) { return l.values.Clone(), nil }

// liar overrides one answer of an honest literal.
type liar struct {
	literal
	min    *uint64
	max    *uint64
	modulo map[uint64]*intset.Set
}

func (l liar) Min() uint64 {
	if l.min != nil {
		return *l.min
	}
	return l.literal.Min()
}

func (l liar) Max() uint64 {
	if l.max != nil {
		return *l.max
	}
	return l.literal.Max()
}

func (l liar) Modulo(d uint64) *intset.Set {
	if s, ok := l.modulo[d]; ok {
		return s
	}
	return l.literal.Modulo(d)
}

func u64(v uint64) *uint64 { return &v }

func TestValidate(t *testing.T) {
	t.Parallel()

	values := intset.New(8, 12, 16)
	honest := literal{values}

	tests := []struct {
		name    string
		a       numcheck.Analyzer
		exp     *intset.Set
		divs    []uint64
		wantErr error
	}{
		{"honest", honest, values, numcheck.Divisors(1, 20), nil},
		{"empty expansion", honest, intset.New(), nil, numcheck.ErrEmptyExpansion},
		{"zero divisor", honest, values, []uint64{0}, numcheck.ErrBadDivisor},
		{"wrong min", liar{literal: honest, min: u64(7)}, values, nil, numcheck.ErrMismatch},
		{"wrong max", liar{literal: honest, max: u64(17)}, values, nil, numcheck.ErrMismatch},
		{
			"wrong residues",
			liar{literal: honest, modulo: map[uint64]*intset.Set{8: intset.New(0)}},
			values, []uint64{7, 8}, numcheck.ErrMismatch,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := numcheck.Validate(tc.a, tc.exp, tc.divs...)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestValidate_MismatchNamesDivisor(t *testing.T) {
	t.Parallel()

	a := liar{
		literal: literal{intset.New(8, 12, 16)},
		modulo:  map[uint64]*intset.Set{8: intset.New(0)},
	}
	err := numcheck.Validate(a, intset.New(8, 12, 16), 8)
	require.ErrorIs(t, err, numcheck.ErrMismatch)
	require.Contains(t, err.Error(), "modulo 8")
}

func TestRun(t *testing.T) {
	t.Parallel()

	require.NoError(t, numcheck.Run(literal{intset.New(1, 5, 9)}, 16))
}

func TestDivisors(t *testing.T) {
	t.Parallel()

	require.Equal(t, []uint64{1, 2, 3}, numcheck.Divisors(0, 3))
	require.Nil(t, numcheck.Divisors(4, 3))
	require.Equal(t,
		[]uint64{math.MaxUint64 - 2, math.MaxUint64 - 1, math.MaxUint64},
		numcheck.Divisors(math.MaxUint64-2, math.MaxUint64))
	require.Equal(t, []uint64{math.MaxUint64}, numcheck.Divisors(math.MaxUint64, math.MaxUint64))
}

func TestResidues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "{0,4}", numcheck.Residues(intset.New(8, 12, 16), 8).String())
}
