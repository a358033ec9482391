// Package lvlbits reasons about the possible lengths, in bits, of
// serialized values without ever listing them.
//
// 🚀 What is lvlbits?
//
//	A small algebra of length-set operators with analytical queries:
//		• Literal sets, padding, concatenation, fixed and ranged repetition, unions
//		• Min / Max / residues modulo N in time polynomial in the tree size
//		• An exact expansion kept as a logged, budgeted escape hatch
//
// ✨ Why?
//
//   - Layouts nest arrays inside unions inside arrays; the literal set of
//     lengths grows combinatorially while the questions a code generator asks
//     (is this always byte aligned? what is the worst case?) stay cheap.
//   - Shared subtrees share one cache, concurrent readers are safe.
//
// Packages:
//
//	bitlength/  the public Set value type (start here)
//	operator/   the operator tree, memo caches, Config and metrics
//	intset/     ordered uint64 sets backing literals and residues
//	numcheck/   cross-checks analytical answers against expansions
//	layout/     YAML layout files to Sets
//	config/     TOML and environment settings
//	cmd/bitlen  command-line reports for layout files
//
// Quick example:
//
//	tag := bitlength.MustNew(8)
//	items, _ := bitlength.MustNew(12).RepeatRange(200)
//	msg, _ := bitlength.Concatenate(tag, items)
//	msg.IsAlignedAtByte() // false: 8 + 12k is 4 mod 8 for odd k
//
//	go get github.com/katalvlaran/lvlbits/bitlength
package lvlbits
