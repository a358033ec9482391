// SPDX-License-Identifier: MIT

// Package operator implements the analytical operator algebra behind bit
// length sets.
//
// 🚀 What is it?
//
//	A bit length set is the set of every length (in bits) that a serialized
//	value of some type can take. Variable-length arrays, unions and nesting
//	make that set combinatorially large, so instead of storing it we store an
//	expression tree describing how it is built:
//
//	  • Scalar          {8,12,16}         literal lengths
//	  • Padding         pad(R, X)         round every length up to a multiple of R
//	  • Concatenation   concat(X, Y, ...) one length from each operand, summed
//	  • Repetition      repeat(k, X)      k operands summed (fixed array)
//	  • RangeRepetition repeat_range(k,X) 0..k operands summed (variable array)
//	  • Union           union(X, Y, ...)  any one operand (tagged union)
//
//	Every node answers Min, Max and Modulo(d) analytically, in time
//	polynomial in the tree size and d. Expand materializes the exact set and
//	exists for validation only.
//
// ✨ Key properties:
//   - Nodes are immutable; composition allocates a new node over shared children.
//   - Kind is a closed set; every algorithm is an exhaustive switch.
//   - Memoize attaches a cache (min, max, residues per divisor, expansion) to
//     a node. Caches are safe for concurrent use.
//   - Optional self-check validates each fresh expansion against the
//     analytical answers (see package numcheck) and panics on disagreement.
//
// ⚙️ Usage:
//
//	a, _ := operator.NewScalar(7, 11, 17)
//	r, _ := operator.NewRepetition(a, 3)
//	m := operator.Memoize(r, operator.NewConfig(operator.WithSelfCheck(true)))
//	m.Min()        // 21
//	m.Modulo(8)    // residues reachable modulo 8
//	m.Expand()     // {21,25,29,31,33,35,39,41,45,51}; slow path
//
// Complexity of Modulo(d) per node (r = residue count ≤ d):
//
//	Scalar            O(|values|)
//	Padding           child.Modulo(lcm(R,d)) + O(lcm(R,d))
//	Concatenation     O(n·d²)
//	Repetition        O(min(k, 2d)·d²)
//	RangeRepetition   O(min(k, 2d)·d²)
//	Union             O(n·d)
package operator
