// SPDX-License-Identifier: MIT
package operator_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbits/intset"
	"github.com/katalvlaran/lvlbits/operator"
)

func requireExpansion(t *testing.T, n *operator.Node, want ...uint64) {
	t.Helper()
	got, err := n.Expand()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got.Values()); diff != "" {
		t.Fatalf("Expand(%s) mismatch (-want +got):\n%s", n, diff)
	}
}

func TestExpand_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("concatenation", func(t *testing.T) {
		n := must(t)(operator.NewConcatenation(
			mustScalar(t, 1, 2, 3),
			mustScalar(t, 4, 5, 6),
			mustScalar(t, 7, 8, 9),
		))
		requireExpansion(t, n, 12, 13, 14, 15, 16, 17, 18)
	})

	t.Run("repetition", func(t *testing.T) {
		n := must(t)(operator.NewRepetition(mustScalar(t, 7, 11, 17), 3))
		requireExpansion(t, n, 21, 25, 29, 31, 33, 35, 39, 41, 45, 51)
	})

	t.Run("repetition zero", func(t *testing.T) {
		n := must(t)(operator.NewRepetition(mustScalar(t, 7, 11, 17), 0))
		requireExpansion(t, n, 0)
	})

	t.Run("range repetition", func(t *testing.T) {
		n := must(t)(operator.NewRangeRepetition(mustScalar(t, 7, 11), 2))
		requireExpansion(t, n, 0, 7, 11, 14, 18, 22)
	})

	t.Run("padding", func(t *testing.T) {
		n := must(t)(operator.NewPadding(must(t)(operator.NewScalarSet(intset.Range(1, 9))), 4))
		requireExpansion(t, n, 4, 8, 12)
	})

	t.Run("union", func(t *testing.T) {
		a := mustScalar(t, 1, 5)
		b := must(t)(operator.NewRepetition(mustScalar(t, 2), 3))
		n := must(t)(operator.NewUnion(a, b))
		ea, err := a.Expand()
		require.NoError(t, err)
		eb, err := b.Expand()
		require.NoError(t, err)
		requireExpansion(t, n, ea.Union(eb).Values()...)
	})

	t.Run("zero-width repetition", func(t *testing.T) {
		n := must(t)(operator.NewRangeRepetition(mustScalar(t, 0), 1_000_000))
		requireExpansion(t, n, 0)
	})
}

func TestExpand_ResultIsOwnedByCaller(t *testing.T) {
	t.Parallel()

	n := operator.Memoize(mustScalar(t, 3, 4), nil)
	got, err := n.Expand()
	require.NoError(t, err)
	got.Add(100)
	requireExpansion(t, n, 3, 4)
}

func TestExpand_BudgetExceeded(t *testing.T) {
	t.Parallel()

	cfg := operator.NewConfig(
		operator.WithExpansionBudget(time.Millisecond),
		operator.WithSelfCheck(false),
		operator.WithSlowThreshold(0),
	)
	wide := must(t)(operator.NewScalarSet(intset.Range(1, 64)))
	n := operator.Memoize(must(t)(operator.NewRangeRepetition(wide, 400)), cfg)

	s, err := n.Expand()
	require.Nil(t, s, "a budget failure must not return a truncated set")
	require.ErrorIs(t, err, operator.ErrExpansionBudgetExceeded)

	// Analytical answers stay available.
	require.Equal(t, uint64(0), n.Min())
	require.Equal(t, uint64(64*400), n.Max())
	require.Equal(t, 8, n.Modulo(8).Len())
}
