// SPDX-License-Identifier: MIT
// Package bitlength: sentinel error set.
// Construction errors surface synchronously from New, the composition
// methods and Mod. Match them with errors.Is.

package bitlength

import (
	"errors"

	"github.com/katalvlaran/lvlbits/operator"
)

var (
	// ErrNegativeValue indicates a negative length at the integer boundary.
	ErrNegativeValue = errors.New("bitlength: lengths must be non-negative")

	// ErrNonInteger indicates an element that is not an integer.
	ErrNonInteger = errors.New("bitlength: element is not an integer")

	// ErrUnsupportedOperand indicates a value New cannot interpret.
	ErrUnsupportedOperand = errors.New("bitlength: unsupported operand type")

	// ErrNilOperand indicates a nil *Set, *operator.Node or *intset.Set.
	ErrNilOperand = errors.New("bitlength: nil operand")
)

// Aliases of the algebra's construction sentinels, so callers need only
// this package for errors.Is checks.
var (
	// ErrEmpty aliases operator.ErrEmptyValues.
	ErrEmpty = operator.ErrEmptyValues

	// ErrNoOperands aliases operator.ErrNoOperands.
	ErrNoOperands = operator.ErrNoOperands

	// ErrBadAlignment aliases operator.ErrBadAlignment.
	ErrBadAlignment = operator.ErrBadAlignment

	// ErrBadDivisor aliases operator.ErrBadDivisor.
	ErrBadDivisor = operator.ErrBadDivisor

	// ErrOverflow aliases operator.ErrOverflow.
	ErrOverflow = operator.ErrOverflow

	// ErrExpansionBudgetExceeded aliases operator.ErrExpansionBudgetExceeded.
	ErrExpansionBudgetExceeded = operator.ErrExpansionBudgetExceeded
)
