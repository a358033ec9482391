// SPDX-License-Identifier: MIT

package operator

import (
	"math/bits"

	"github.com/katalvlaran/lvlbits/intset"
)

// pad rounds x up to the next multiple of r (r ≥ 1).
func pad(x, r uint64) uint64 {
	if rem := x % r; rem != 0 {
		return x + (r - rem)
	}

	return x
}

// padChecked is pad with ok false when the result does not fit in uint64.
func padChecked(x, r uint64) (uint64, bool) {
	rem := x % r
	if rem == 0 {
		return x, true
	}

	return addChecked(x, r-rem)
}

func addChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)

	return sum, carry == 0
}

func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, hi == 0
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm of two positive integers.
func lcm(a, b uint64) uint64 {
	return a / gcd(a, b) * b
}

// addMod returns (x + y) mod d for x, y < d without overflowing.
func addMod(x, y, d uint64) uint64 {
	if x >= d-y {
		return x - (d - y)
	}

	return x + y
}

// sumMod returns { (x + y) mod d | x ∈ a, y ∈ b } for residue sets a, b.
func sumMod(a, b *intset.Set, d uint64) *intset.Set {
	out := intset.New()
	for x := range a.All() {
		for y := range b.All() {
			out.Add(addMod(x, y, d))
		}
	}

	return out
}

// equivalentCount reduces a repetition count for residue computations modulo d.
//
// Let S_k be the residues reachable by summing k picks. S_k ⊆ S_{k+d} always
// (add d copies of one pick), and for k ≥ d-1 the Erdős–Ginzburg–Ziv theorem
// gives a d-subset of any k+d picks summing to 0 mod d, so S_{k+d} = S_k.
// Hence min(k, d + k mod d) yields the same residues as k.
func equivalentCount(k, d uint64) uint64 {
	return min(k, d+k%d)
}

// repeatMod returns the residues of every k-pick sum from r, modulo d.
func repeatMod(r *intset.Set, k, d uint64) *intset.Set {
	acc := intset.New(0)
	for i := uint64(0); i < k; i++ {
		next := sumMod(acc, r, d)
		if next.Equal(acc) {
			break // fixed point
		}
		acc = next
	}

	return acc
}

// repeatRangeMod returns the residues of every j-pick sum from r, 0 ≤ j ≤ k.
func repeatRangeMod(r *intset.Set, k, d uint64) *intset.Set {
	acc := intset.New(0)
	out := intset.New(0)
	for i := uint64(0); i < k; i++ {
		next := sumMod(acc, r, d)
		if next.Equal(acc) {
			break
		}
		acc = next
		out.AddAll(acc)
	}

	return out
}
