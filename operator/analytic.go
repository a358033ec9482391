// SPDX-License-Identifier: MIT

package operator

import (
	"math"

	"github.com/katalvlaran/lvlbits/intset"
)

// Min returns the smallest reachable length.
func (n *Node) Min() uint64 {
	if n.memo != nil {
		return n.memo.minimum(n)
	}

	return n.min()
}

// Max returns the largest reachable length.
func (n *Node) Max() uint64 {
	if n.memo != nil {
		return n.memo.maximum(n)
	}

	return n.max()
}

// Modulo returns { x mod divisor | x reachable }, computed analytically.
// The result is owned by the caller.
//
// Modulo panics with ErrBadDivisor when divisor is zero, like integer division.
func (n *Node) Modulo(divisor uint64) *intset.Set {
	if divisor == 0 {
		panic(ErrBadDivisor)
	}
	if n.memo != nil {
		return n.memo.modulo(n, divisor)
	}

	return n.modulo(divisor)
}

func (n *Node) min() uint64 {
	switch n.kind {
	case KindScalar:
		v, _ := n.values.Min()
		return v
	case KindPadding:
		return pad(n.child.Min(), n.n)
	case KindConcatenation:
		var sum uint64
		for _, c := range n.children {
			sum += c.Min()
		}
		return sum
	case KindRepetition:
		return n.n * n.child.Min()
	case KindRangeRepetition:
		return 0 // zero copies are always allowed
	case KindUnion:
		lo := uint64(math.MaxUint64)
		for _, c := range n.children {
			lo = min(lo, c.Min())
		}
		return lo
	}
	panic(unknownKind(n.kind))
}

func (n *Node) max() uint64 {
	switch n.kind {
	case KindScalar:
		v, _ := n.values.Max()
		return v
	case KindPadding:
		return pad(n.child.Max(), n.n)
	case KindConcatenation:
		var sum uint64
		for _, c := range n.children {
			sum += c.Max()
		}
		return sum
	case KindRepetition, KindRangeRepetition:
		return n.n * n.child.Max()
	case KindUnion:
		var hi uint64
		for _, c := range n.children {
			hi = max(hi, c.Max())
		}
		return hi
	}
	panic(unknownKind(n.kind))
}

func (n *Node) modulo(d uint64) *intset.Set {
	switch n.kind {
	case KindScalar:
		return n.values.Map(func(x uint64) uint64 { return x % d })

	case KindPadding:
		// pad(x) mod d depends only on x mod lcm(R, d).
		l := lcm(n.n, d)
		return n.child.Modulo(l).Map(func(r uint64) uint64 { return pad(r, n.n) % d })

	case KindConcatenation:
		acc := intset.New(0)
		for _, c := range n.children {
			acc = sumMod(acc, c.Modulo(d), d)
		}
		return acc

	case KindRepetition:
		return repeatMod(n.child.Modulo(d), equivalentCount(n.n, d), d)

	case KindRangeRepetition:
		return repeatRangeMod(n.child.Modulo(d), equivalentCount(n.n, d), d)

	case KindUnion:
		out := intset.New()
		for _, c := range n.children {
			out.AddAll(c.Modulo(d))
		}
		return out
	}
	panic(unknownKind(n.kind))
}
