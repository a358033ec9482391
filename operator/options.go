// SPDX-License-Identifier: MIT

// Package operator: functional configuration for memo caches.
// This file defines:
//   - Config / Option (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values).
//
// A Config is attached to every memoized node and governs only the slow
// numerical path: analytical queries ignore it entirely.

package operator

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSlowThreshold is the expansion duration above which a warning
	// with a stack trace is logged.
	DefaultSlowThreshold = time.Second

	// DefaultExpansionBudget disables the hard budget (0 = unlimited).
	DefaultExpansionBudget time.Duration = 0

	// DefaultSelfCheck enables cross-validation of every fresh expansion.
	DefaultSelfCheck = true

	// DefaultProbeDivisors is the largest divisor probed by the self-check;
	// divisors 1..DefaultProbeDivisors are compared.
	DefaultProbeDivisors uint64 = 32
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSlowThresholdNegative = "operator: WithSlowThreshold: threshold must be >= 0"
	panicBudgetNegative        = "operator: WithExpansionBudget: budget must be >= 0"
	panicProbeDivisorsZero     = "operator: WithProbeDivisors: max divisor must be >= 1"
	panicLoggerNil             = "operator: WithLogger: logger must be non-nil"
)

// Option mutates a Config under construction.
type Option func(*Config)

// Config is the effective memo configuration. Build with NewConfig; it is
// read-only afterwards and may be shared by any number of trees.
type Config struct {
	slowThreshold   time.Duration
	expansionBudget time.Duration
	selfCheck       bool
	probeDivisors   uint64
	logger          logrus.FieldLogger
	metrics         *Metrics
}

// WithSlowThreshold sets the duration above which an expansion is reported
// as slow. Zero disables the report. Panics on a negative value.
func WithSlowThreshold(d time.Duration) Option {
	if d < 0 {
		panic(panicSlowThresholdNegative)
	}

	return func(c *Config) { c.slowThreshold = d }
}

// WithExpansionBudget bounds the wall time of one Expand call. Zero means
// unlimited. Panics on a negative value.
func WithExpansionBudget(d time.Duration) Option {
	if d < 0 {
		panic(panicBudgetNegative)
	}

	return func(c *Config) { c.expansionBudget = d }
}

// WithSelfCheck toggles validation of fresh expansions against Min, Max and
// Modulo. A disagreement panics with ErrInvariantViolation.
func WithSelfCheck(enabled bool) Option {
	return func(c *Config) { c.selfCheck = enabled }
}

// WithProbeDivisors sets the largest divisor used by the self-check.
func WithProbeDivisors(maxDivisor uint64) Option {
	if maxDivisor < 1 {
		panic(panicProbeDivisorsZero)
	}

	return func(c *Config) { c.probeDivisors = maxDivisor }
}

// WithLogger sets the logger used for slow-path diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(c *Config) { c.logger = l }
}

// WithMetrics attaches collectors. A nil *Metrics disables collection.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) { c.metrics = m }
}

// NewConfig resolves opts over the defaults. Later options win.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		slowThreshold:   DefaultSlowThreshold,
		expansionBudget: DefaultExpansionBudget,
		selfCheck:       DefaultSelfCheck,
		probeDivisors:   DefaultProbeDivisors,
		logger:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() *Config { return NewConfig() }

// With returns a copy of c with opts applied on top.
func (c *Config) With(opts ...Option) *Config {
	cp := *c
	for _, opt := range opts {
		opt(&cp)
	}

	return &cp
}

// SlowThreshold returns the slow-expansion reporting threshold.
func (c *Config) SlowThreshold() time.Duration { return c.slowThreshold }

// ExpansionBudget returns the hard expansion budget (0 = unlimited).
func (c *Config) ExpansionBudget() time.Duration { return c.expansionBudget }

// SelfCheck reports whether fresh expansions are cross-validated.
func (c *Config) SelfCheck() bool { return c.selfCheck }

// ProbeDivisors returns the largest self-check divisor.
func (c *Config) ProbeDivisors() uint64 { return c.probeDivisors }

// Logger returns the diagnostics logger.
func (c *Config) Logger() logrus.FieldLogger { return c.logger }

// Metrics returns the attached collectors, possibly nil.
func (c *Config) Metrics() *Metrics { return c.metrics }
