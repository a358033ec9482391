// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"github.com/katalvlaran/lvlbits/intset"
)

// NewScalar builds a Scalar node over the given lengths.
// Returns ErrEmptyValues when no value is given.
func NewScalar(values ...uint64) (*Node, error) {
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}

	return &Node{kind: KindScalar, values: intset.New(values...)}, nil
}

// NewScalarSet builds a Scalar node over a copy of s.
func NewScalarSet(s *intset.Set) (*Node, error) {
	if s.Empty() {
		return nil, ErrEmptyValues
	}

	return &Node{kind: KindScalar, values: s.Clone()}, nil
}

// NewPadding rounds every length of child up to a multiple of alignment.
func NewPadding(child *Node, alignment uint64) (*Node, error) {
	if child == nil {
		return nil, fmt.Errorf("padding: %w", ErrNilNode)
	}
	if alignment < 1 {
		return nil, ErrBadAlignment
	}
	if _, ok := padChecked(child.Max(), alignment); !ok {
		return nil, fmt.Errorf("padding %d to %d: %w", child.Max(), alignment, ErrOverflow)
	}

	return &Node{kind: KindPadding, child: child, n: alignment}, nil
}

// NewConcatenation lays children end to end.
func NewConcatenation(children ...*Node) (*Node, error) {
	if err := validateOperands("concatenation", children); err != nil {
		return nil, err
	}
	var hi uint64
	for i, c := range children {
		var ok bool
		if hi, ok = addChecked(hi, c.Max()); !ok {
			return nil, fmt.Errorf("concatenation: operand %d: %w", i, ErrOverflow)
		}
	}

	return &Node{kind: KindConcatenation, children: append([]*Node(nil), children...)}, nil
}

// NewRepetition sums exactly count copies of child. count may be zero.
func NewRepetition(child *Node, count uint64) (*Node, error) {
	if child == nil {
		return nil, fmt.Errorf("repetition: %w", ErrNilNode)
	}
	if _, ok := mulChecked(count, child.Max()); !ok {
		return nil, fmt.Errorf("repetition: %d copies of %d: %w", count, child.Max(), ErrOverflow)
	}

	return &Node{kind: KindRepetition, child: child, n: count}, nil
}

// NewRangeRepetition sums between zero and maxCount copies of child.
func NewRangeRepetition(child *Node, maxCount uint64) (*Node, error) {
	if child == nil {
		return nil, fmt.Errorf("range repetition: %w", ErrNilNode)
	}
	if _, ok := mulChecked(maxCount, child.Max()); !ok {
		return nil, fmt.Errorf("range repetition: %d copies of %d: %w", maxCount, child.Max(), ErrOverflow)
	}

	return &Node{kind: KindRangeRepetition, child: child, n: maxCount}, nil
}

// NewUnion offers children as mutually exclusive alternatives.
func NewUnion(children ...*Node) (*Node, error) {
	if err := validateOperands("union", children); err != nil {
		return nil, err
	}

	return &Node{kind: KindUnion, children: append([]*Node(nil), children...)}, nil
}

func validateOperands(tag string, children []*Node) error {
	if len(children) == 0 {
		return fmt.Errorf("%s: %w", tag, ErrNoOperands)
	}
	for i, c := range children {
		if c == nil {
			return fmt.Errorf("%s: operand %d: %w", tag, i, ErrNilNode)
		}
	}

	return nil
}
