// SPDX-License-Identifier: MIT
package bitlength_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbits/bitlength"
	"github.com/katalvlaran/lvlbits/intset"
	"github.com/katalvlaran/lvlbits/operator"
)

func TestScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func(t *testing.T) *bitlength.Set
		min     uint64
		max     uint64
		mod     uint64
		residue string
		exact   string
	}{
		{
			name:    "scalar",
			build:   func(t *testing.T) *bitlength.Set { return bitlength.MustNew([]int{8, 12, 16}) },
			min:     8,
			max:     16,
			mod:     8,
			residue: "{0,4}",
			exact:   "{8,12,16}",
		},
		{
			name: "concatenation",
			build: func(t *testing.T) *bitlength.Set {
				return mustSet(t)(bitlength.Concatenate([]int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9}))
			},
			min:     12,
			max:     18,
			mod:     8,
			residue: "{0,1,2,4,5,6,7}",
			exact:   "{12,13,14,15,16,17,18}",
		},
		{
			name:    "repetition",
			build:   func(t *testing.T) *bitlength.Set { return mustSet(t)(bitlength.MustNew([]int{7, 11, 17}).Repeat(3)) },
			min:     21,
			max:     51,
			mod:     4,
			residue: "{1,3}",
			exact:   "{21,25,29,31,33,35,39,41,45,51}",
		},
		{
			name:    "range repetition",
			build:   func(t *testing.T) *bitlength.Set { return mustSet(t)(bitlength.MustNew([]int{7, 11}).RepeatRange(2)) },
			min:     0,
			max:     22,
			mod:     7,
			residue: "{0,1,4}",
			exact:   "{0,7,11,14,18,22}",
		},
		{
			name: "padding",
			build: func(t *testing.T) *bitlength.Set {
				return mustSet(t)(bitlength.MustNew(intset.Range(1, 9)).PadToAlignment(4))
			},
			min:     4,
			max:     12,
			mod:     16,
			residue: "{4,8,12}",
			exact:   "{4,8,12}",
		},
		{
			name: "union",
			build: func(t *testing.T) *bitlength.Set {
				return mustSet(t)(bitlength.Unite([]int{8, 16}, 12))
			},
			min:     8,
			max:     16,
			mod:     8,
			residue: "{0,4}",
			exact:   "{8,12,16}",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := tc.build(t)
			assert.Equal(t, tc.min, s.Min())
			assert.Equal(t, tc.max, s.Max())

			r, err := s.Residues(tc.mod)
			require.NoError(t, err)
			assert.Equal(t, tc.residue, r.String())

			e, err := s.Expand()
			require.NoError(t, err)
			assert.Equal(t, tc.exact, e.String())
		})
	}
}

func TestFixedLength(t *testing.T) {
	t.Parallel()

	eight := bitlength.MustNew(8)
	require.True(t, eight.FixedLength())
	require.True(t, mustSet(t)(eight.Repeat(4)).FixedLength())
	require.False(t, mustSet(t)(eight.RepeatRange(1)).FixedLength())
	require.True(t, mustSet(t)(eight.RepeatRange(0)).FixedLength())
}

func TestMod(t *testing.T) {
	t.Parallel()

	s := bitlength.MustNew([]int{8, 12, 16})
	m := mustSet(t)(s.Mod(8))
	require.Equal(t, "{0,4}", m.String())
	require.Equal(t, uint64(0), m.Min())
	require.Equal(t, uint64(4), m.Max())

	_, err := s.Mod(0)
	require.ErrorIs(t, err, bitlength.ErrBadDivisor)
	_, err = s.Residues(0)
	require.ErrorIs(t, err, bitlength.ErrBadDivisor)
}

func TestIsAlignedAt(t *testing.T) {
	t.Parallel()

	odd := mustSet(t)(bitlength.MustNew([]int{3, 5, 13}).RepeatRange(9))
	for _, r := range []uint64{1, 2, 3, 8, 13, 32} {
		padded := mustSet(t)(odd.PadToAlignment(r))
		require.Truef(t, padded.IsAlignedAt(r), "pad(%d) must be aligned at %d", r, r)
	}

	require.True(t, bitlength.MustNew([]int{8, 16, 64}).IsAlignedAtByte())
	require.False(t, bitlength.MustNew([]int{8, 12}).IsAlignedAtByte())
	require.True(t, bitlength.MustNew([]int{8, 12}).IsAlignedAt(4))
	require.Panics(t, func() { odd.IsAlignedAt(0) })
}

func TestEqual_Approximate(t *testing.T) {
	t.Parallel()

	a := bitlength.MustNew([]int{0, 64})
	b := bitlength.MustNew([]int{0, 32, 64})

	// Same min, max and residues mod 32; different exact sets. This false
	// positive is the documented contract of Equal.
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.Equal(t, a.Hash(), b.Hash())

	ea, err := a.Expand()
	require.NoError(t, err)
	eb, err := b.Expand()
	require.NoError(t, err)
	require.False(t, ea.Equal(eb))
}

func TestEqual_DifferentExtremesNeverEqual(t *testing.T) {
	t.Parallel()

	base := bitlength.MustNew([]int{8, 16})
	tests := []struct {
		name  string
		other *bitlength.Set
	}{
		{"min differs", bitlength.MustNew([]int{0, 16})},
		{"max differs", bitlength.MustNew([]int{8, 48})},
		{"residues differ", bitlength.MustNew([]int{8, 12, 16})},
		{"nil", nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.False(t, base.Equal(tc.other))
		})
	}
}

func TestEqual_ReflexiveAcrossForms(t *testing.T) {
	t.Parallel()

	a := mustSet(t)(bitlength.Concatenate(8, 8, 8))
	b := mustSet(t)(bitlength.MustNew(8).Repeat(3))
	c := bitlength.MustNew(24)

	require.True(t, a.Equal(a))
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(c))
	require.Equal(t, a.Hash(), c.Hash())
	require.NotEqual(t, c.Hash(), bitlength.MustNew(25).Hash())
}

func TestExpand_Budget(t *testing.T) {
	t.Parallel()

	s := mustSet(t)(bitlength.MustNew(intset.Range(1, 64),
		operator.WithExpansionBudget(time.Millisecond),
		operator.WithSelfCheck(false),
		operator.WithSlowThreshold(0),
	).RepeatRange(400))

	e, err := s.Expand()
	require.Nil(t, e)
	require.ErrorIs(t, err, bitlength.ErrExpansionBudgetExceeded)

	_, err = s.Len()
	require.ErrorIs(t, err, bitlength.ErrExpansionBudgetExceeded)
	_, err = s.All()
	require.ErrorIs(t, err, bitlength.ErrExpansionBudgetExceeded)

	// The analytical surface does not care.
	require.Equal(t, uint64(25600), s.Max())
	require.True(t, mustSet(t)(s.PadToAlignment(8)).IsAlignedAtByte())
}

func TestQueries_Concurrent(t *testing.T) {
	t.Parallel()

	s := mustSet(t)(bitlength.Concatenate(
		mustSet(t)(bitlength.MustNew([]int{3, 5}).RepeatRange(40)),
		mustSet(t)(bitlength.MustNew([]int{7, 9}).Repeat(30)),
	))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(d uint64) {
			defer wg.Done()
			r, err := s.Residues(d)
			assert.NoError(t, err)
			assert.False(t, r.Empty())
			assert.Equal(t, uint64(210), s.Min())
			assert.Equal(t, uint64(470), s.Max())
		}(uint64(i%8 + 1))
	}
	wg.Wait()
}

func TestQueries_ConcurrentCacheHits(t *testing.T) {
	t.Parallel()

	s := mustSet(t)(bitlength.MustNew([]int{7, 11, 17}).RepeatRange(5))
	twin := mustSet(t)(bitlength.MustNew([]int{7, 11, 17}).RepeatRange(5))

	want, err := s.Residues(8)
	require.NoError(t, err)
	exact, err := s.Expand()
	require.NoError(t, err)

	// Every goroutine hits the same cached residue and expansion sets.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r, err := s.Residues(8)
				if !assert.NoError(t, err) || !assert.True(t, want.Equal(r)) {
					return
				}
				r.Add(99) // caller-owned copy
				s.IsAlignedAt(8)
				assert.True(t, s.Equal(twin))
				e, err := s.Expand()
				if !assert.NoError(t, err) || !assert.True(t, exact.Equal(e)) {
					return
				}
			}
		}()
	}
	wg.Wait()

	r, err := s.Residues(8)
	require.NoError(t, err)
	require.False(t, r.Has(99))
}
