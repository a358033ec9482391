// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// Construction errors are returned synchronously by the New* constructors and
// never deferred to query time. Queries over well-formed trees do not fail.
// ErrInvariantViolation is only ever carried by a panic.

package operator

import "errors"

var (
	// ErrEmptyValues indicates a Scalar built from no values.
	ErrEmptyValues = errors.New("operator: scalar needs at least one value")

	// ErrNoOperands indicates a Concatenation or Union over zero children.
	ErrNoOperands = errors.New("operator: at least one operand is required")

	// ErrBadAlignment indicates a Padding alignment below 1.
	ErrBadAlignment = errors.New("operator: alignment must be >= 1")

	// ErrBadDivisor indicates a modulo divisor below 1.
	ErrBadDivisor = errors.New("operator: divisor must be >= 1")

	// ErrNilNode indicates a nil child operand.
	ErrNilNode = errors.New("operator: nil node")

	// ErrOverflow indicates a tree whose largest length does not fit in
	// uint64. Every reachable length is at most Max, so queries and
	// expansion of an accepted tree never wrap.
	ErrOverflow = errors.New("operator: length overflows uint64")

	// ErrExpansionBudgetExceeded indicates the numerical expansion ran past
	// the configured time budget. The partial result is discarded.
	ErrExpansionBudgetExceeded = errors.New("operator: expansion budget exceeded")

	// ErrInvariantViolation marks a disagreement between the analytical and
	// numerical paths. It signals a defect in the algebra, never bad input.
	ErrInvariantViolation = errors.New("operator: invariant violation")
)
