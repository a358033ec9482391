// SPDX-License-Identifier: MIT
// Package layout: sentinel error set. Errors tied to a YAML value carry its
// line number; construction errors from bitlength are wrapped unchanged.

package layout

import "errors"

var (
	// ErrUnknownForm indicates a mapping with no recognised form key, or an
	// unrecognised key.
	ErrUnknownForm = errors.New("layout: unknown form")

	// ErrAmbiguousForm indicates a mapping with more than one form key.
	ErrAmbiguousForm = errors.New("layout: more than one form")

	// ErrMissingOf indicates pad, repeat or repeat_range without "of", or
	// "of" next to a form that takes none.
	ErrMissingOf = errors.New("layout: \"of\" is required by pad, repeat and repeat_range only")

	// ErrBadLiteral indicates a length or count that is not a non-negative
	// integer.
	ErrBadLiteral = errors.New("layout: expected a non-negative integer")

	// ErrUnknownRef indicates a reference to an undefined type.
	ErrUnknownRef = errors.New("layout: unknown type reference")

	// ErrCycle indicates named types that refer to themselves.
	ErrCycle = errors.New("layout: reference cycle")

	// ErrNoRoot indicates a document without a root expression.
	ErrNoRoot = errors.New("layout: document has no root")
)
