// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"github.com/katalvlaran/lvlbits/intset"
)

// Kind enumerates the node variants. The set is closed.
type Kind uint8

const (
	// KindScalar holds a literal, non-empty value set.
	KindScalar Kind = iota

	// KindPadding rounds each child value up to a multiple of the alignment.
	KindPadding

	// KindConcatenation sums one value picked from each child.
	KindConcatenation

	// KindRepetition sums exactly k values picked from the child.
	KindRepetition

	// KindRangeRepetition sums between 0 and k values picked from the child.
	KindRangeRepetition

	// KindUnion picks a value from any one child.
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindPadding:
		return "pad"
	case KindConcatenation:
		return "concat"
	case KindRepetition:
		return "repeat"
	case KindRangeRepetition:
		return "repeat_range"
	case KindUnion:
		return "union"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Node is one immutable operator in a length-set expression tree.
//
// Only the fields relevant to kind are populated:
//   - values  : KindScalar
//   - child   : KindPadding, KindRepetition, KindRangeRepetition
//   - children: KindConcatenation, KindUnion
//   - n       : alignment (KindPadding) or count (the two repetitions)
//
// Children are shared by pointer between trees; nothing reachable from a
// Node is ever mutated after construction. memo is non-nil only on nodes
// returned by Memoize.
type Node struct {
	kind     Kind
	values   *intset.Set
	child    *Node
	children []*Node
	n        uint64
	memo     *memo
}

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// Memoized reports whether n carries a cache.
func (n *Node) Memoized() bool { return n.memo != nil }

// Children returns the direct operands of n in order (nil for Scalar).
// The returned slice is a copy.
func (n *Node) Children() []*Node {
	switch n.kind {
	case KindPadding, KindRepetition, KindRangeRepetition:
		return []*Node{n.child}
	case KindConcatenation, KindUnion:
		return append([]*Node(nil), n.children...)
	default:
		return nil
	}
}

// unknownKind is the panic value for an impossible switch arm.
func unknownKind(k Kind) string {
	return fmt.Sprintf("operator: unknown node kind %s", k)
}
