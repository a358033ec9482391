// SPDX-License-Identifier: MIT
// White-box tests for arithmetic helpers and the self-check failure path.
package operator

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	t.Parallel()

	tests := []struct{ x, r, want uint64 }{
		{0, 8, 0}, {1, 8, 8}, {8, 8, 8}, {9, 8, 16}, {5, 1, 5}, {13, 4, 16},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, pad(tc.x, tc.r), "pad(%d, %d)", tc.x, tc.r)
	}
}

func TestGcdLcm(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(4), gcd(12, 8))
	require.Equal(t, uint64(24), lcm(12, 8))
	require.Equal(t, uint64(7), lcm(7, 1))
	require.Equal(t, uint64(35), lcm(5, 7))
}

func TestAddMod_NoOverflow(t *testing.T) {
	t.Parallel()

	d := uint64(math.MaxUint64 - 1)
	require.Equal(t, uint64(1), addMod(d-1, 2, d))
	require.Equal(t, uint64(5), addMod(2, 3, 8))
	require.Equal(t, uint64(1), addMod(6, 3, 8))
}

func TestCheckedArith(t *testing.T) {
	t.Parallel()

	v, ok := addChecked(math.MaxUint64-1, 1)
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxUint64), v)
	_, ok = addChecked(math.MaxUint64, 1)
	require.False(t, ok)

	v, ok = mulChecked(1<<31, 1<<32)
	require.True(t, ok)
	require.Equal(t, uint64(1<<63), v)
	_, ok = mulChecked(1<<32, 1<<32)
	require.False(t, ok)
	_, ok = mulChecked(0, math.MaxUint64)
	require.True(t, ok)

	v, ok = padChecked(math.MaxUint64-7, 8)
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxUint64-7), v)
	_, ok = padChecked(math.MaxUint64-6, 8)
	require.False(t, ok)
}

func TestEquivalentCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(3), equivalentCount(3, 8))
	require.Equal(t, uint64(8), equivalentCount(8, 8))
	require.Equal(t, uint64(9), equivalentCount(17, 8))
	require.Equal(t, uint64(8), equivalentCount(1<<40, 8))
	require.Equal(t, uint64(0), equivalentCount(0, 8))
}

// TestSelfCheck_PanicsOnMismatch corrupts a cached node behind the algebra's
// back and expects the expansion self-check to abort loudly.
func TestSelfCheck_PanicsOnMismatch(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	raw, err := NewScalar(4, 8)
	require.NoError(t, err)
	n := Memoize(raw, NewConfig(WithLogger(logger), WithSlowThreshold(0)))
	require.Equal(t, uint64(4), n.Min()) // cached

	n.values.Add(1) // analytical min is now stale

	defer func() {
		r := recover()
		require.NotNil(t, r, "self-check must panic")
		perr, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(perr, ErrInvariantViolation), "got %v", perr)
		require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	}()
	_, _ = n.expansionForTest()
}

// expansionForTest bypasses the singleflight wrapper so the panic value is
// observed as raised.
func (n *Node) expansionForTest() (any, error) {
	s, err := n.expandUncached(newExpander(n.memo.cfg))
	if err != nil {
		return nil, err
	}
	n.memo.check(n, s)
	return s, nil
}
