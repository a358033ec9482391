// SPDX-License-Identifier: MIT

package bitlength

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlbits/operator"
)

// PadToAlignment rounds every length of s up to a multiple of alignment.
// Returns ErrBadAlignment when alignment < 1.
func (s *Set) PadToAlignment(alignment uint64) (*Set, error) {
	n, err := operator.NewPadding(s.root, alignment)
	if err != nil {
		return nil, err
	}

	return s.derive(n), nil
}

// Repeat lays count copies of s end to end. Repeat(0) is {0}.
// Returns ErrOverflow when count copies of Max do not fit in uint64.
func (s *Set) Repeat(count uint64) (*Set, error) {
	n, err := operator.NewRepetition(s.root, count)
	if err != nil {
		return nil, err
	}

	return s.derive(n), nil
}

// RepeatRange lays between 0 and maxCount copies of s end to end.
// Returns ErrOverflow like Repeat.
func (s *Set) RepeatRange(maxCount uint64) (*Set, error) {
	n, err := operator.NewRangeRepetition(s.root, maxCount)
	if err != nil {
		return nil, err
	}

	return s.derive(n), nil
}

// Add is Concatenate(s, o). When both sides are fixed-length the result is a
// plain fixed length holding their sum.
func (s *Set) Add(o *Set) (*Set, error) {
	if s.FixedLength() && o.FixedLength() && s.Min() <= math.MaxUint64-o.Min() {
		n, err := operator.NewScalar(s.Min() + o.Min())
		if err != nil {
			return nil, err
		}
		return s.derive(n), nil
	}
	n, err := operator.NewConcatenation(s.root, o.root)
	if err != nil {
		return nil, err
	}

	return s.derive(n), nil
}

// AddBits appends a fixed-width field of n bits.
func (s *Set) AddBits(n uint64) (*Set, error) {
	field, err := operator.NewScalar(n)
	if err != nil {
		return nil, err
	}

	return s.Add(s.derive(field))
}

// Or is Unite(s, o).
func (s *Set) Or(o *Set) *Set {
	n, err := operator.NewUnion(s.root, o.root)
	if err != nil {
		panic(err)
	}

	return s.derive(n)
}

// Concatenate lays operands end to end in order. Each operand is anything
// New accepts. The result inherits the Config of the first *Set operand, or
// the defaults when there is none.
//
// Errors: ErrNoOperands, or the first operand coercion error.
func Concatenate(operands ...any) (*Set, error) {
	cfg, nodes, err := operandNodes("concatenate", operands)
	if err != nil {
		return nil, err
	}
	n, err := operator.NewConcatenation(nodes...)
	if err != nil {
		return nil, err
	}

	return wrap(n, cfg), nil
}

// Unite builds the set of alternatives: any one operand, never several.
// Operands and Config follow the rules of Concatenate.
func Unite(operands ...any) (*Set, error) {
	cfg, nodes, err := operandNodes("unite", operands)
	if err != nil {
		return nil, err
	}
	n, err := operator.NewUnion(nodes...)
	if err != nil {
		return nil, err
	}

	return wrap(n, cfg), nil
}

func operandNodes(tag string, operands []any) (*operator.Config, []*operator.Node, error) {
	if len(operands) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", tag, ErrNoOperands)
	}
	cfg := operator.DefaultConfig()
	for _, op := range operands {
		if s, ok := op.(*Set); ok && s != nil {
			cfg = s.cfg
			break
		}
	}
	nodes := make([]*operator.Node, 0, len(operands))
	for i, op := range operands {
		s, err := coerce(op, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: operand %d: %w", tag, i, err)
		}
		nodes = append(nodes, s.root)
	}

	return cfg, nodes, nil
}

// derive wraps n in a fresh cache under the receiver's Config.
func (s *Set) derive(n *operator.Node) *Set {
	return wrap(n, s.cfg)
}
