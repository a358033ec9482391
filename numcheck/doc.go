// SPDX-License-Identifier: MIT

// Package numcheck cross-validates analytical length-set results against a
// brute-force numerical expansion.
//
// The analytical accessors of an operator tree (Min, Max, Modulo) never look
// at individual lengths. The expansion does. For every well-formed tree the
// two must agree:
//
//	Min()       == min(E)
//	Max()       == max(E)
//	Modulo(d)   == { x mod d | x ∈ E }      for every d ≥ 1
//
// Validate checks exactly these laws for a chosen list of divisors and
// reports the first disagreement as ErrMismatch with a readable diff.
// Run is the convenience form that expands first.
//
// This package is used by tests and by the optional self-check inside the
// operator memo cache. It is not meant for production query paths: the
// expansion it needs can be combinatorially large.
package numcheck
