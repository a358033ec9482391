// SPDX-License-Identifier: MIT

package operator

import (
	"strconv"
	"strings"
)

// String renders the tree deterministically, e.g.
//
//	concat({8},repeat_range(4,pad(8,{1,2,3})))
//
// Caches are transparent and do not appear in the output.
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)

	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	switch n.kind {
	case KindScalar:
		b.WriteString(n.values.String())
	case KindPadding, KindRepetition, KindRangeRepetition:
		b.WriteString(n.kind.String())
		b.WriteByte('(')
		b.WriteString(strconv.FormatUint(n.n, 10))
		b.WriteByte(',')
		n.child.format(b)
		b.WriteByte(')')
	case KindConcatenation, KindUnion:
		b.WriteString(n.kind.String())
		b.WriteByte('(')
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte(',')
			}
			c.format(b)
		}
		b.WriteByte(')')
	default:
		panic(unknownKind(n.kind))
	}
}
