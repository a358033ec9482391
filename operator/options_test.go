// SPDX-License-Identifier: MIT
package operator_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbits/operator"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	c := operator.DefaultConfig()
	require.Equal(t, operator.DefaultSlowThreshold, c.SlowThreshold())
	require.Equal(t, operator.DefaultExpansionBudget, c.ExpansionBudget())
	require.Equal(t, operator.DefaultSelfCheck, c.SelfCheck())
	require.Equal(t, operator.DefaultProbeDivisors, c.ProbeDivisors())
	require.Same(t, logrus.StandardLogger(), c.Logger())
	require.Nil(t, c.Metrics())
}

func TestNewConfig_LastWriterWins(t *testing.T) {
	t.Parallel()

	c := operator.NewConfig(
		operator.WithSelfCheck(false),
		operator.WithProbeDivisors(8),
		operator.WithSelfCheck(true),
		operator.WithExpansionBudget(time.Minute),
	)
	require.True(t, c.SelfCheck())
	require.Equal(t, uint64(8), c.ProbeDivisors())
	require.Equal(t, time.Minute, c.ExpansionBudget())
}

func TestConfig_WithCopies(t *testing.T) {
	t.Parallel()

	base := operator.NewConfig(operator.WithProbeDivisors(4))
	derived := base.With(operator.WithProbeDivisors(16))
	require.Equal(t, uint64(4), base.ProbeDivisors())
	require.Equal(t, uint64(16), derived.ProbeDivisors())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { operator.WithSlowThreshold(-time.Second) })
	require.Panics(t, func() { operator.WithExpansionBudget(-1) })
	require.Panics(t, func() { operator.WithProbeDivisors(0) })
	require.Panics(t, func() { operator.WithLogger(nil) })
	require.NotPanics(t, func() { operator.WithMetrics(nil) })
}
