// SPDX-License-Identifier: MIT

// Package intset provides an ordered set of non-negative integers used for
// literal length sets, residue sets and numerical expansions.
//
// What is it?
//
//	A thin wrapper over a generic B-tree (github.com/google/btree) that keeps
//	values sorted at all times. Sorted storage gives:
//	  • deterministic rendering ("{4,8,12}") for diagnostics and golden tests
//	  • O(log n) Min / Max without a scan
//	  • O(1) copy-on-write Clone, so cached sets can be handed out safely
//
// Usage:
//
//	s := intset.New(12, 8, 16)
//	s.Add(4)
//	fmt.Println(s)         // {4,8,12,16}
//	lo, _ := s.Min()       // 4
//	for v := range s.All() {
//	    ...
//	}
//
// Ownership:
//
//	A *Set is mutable through Add/AddAll. Producers that cache a set (see
//	package operator) return Clone()s; treat sets you did not build as
//	read-only.
package intset
