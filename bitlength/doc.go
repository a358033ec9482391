// SPDX-License-Identifier: MIT

// Package bitlength is the public face of lvlbits: a value type describing
// every bit length a serialized type can take.
//
// 🚀 What is a bit length set?
//
//	The set of all possible lengths, in bits, of a serialized value. A uint8
//	field is {8}; an array of up to 4 such fields is {0,8,16,24,32}; a union
//	of both, prefixed by an 8-bit tag, is {8,16,24,32,40}. Real layouts nest
//	these rules deeply and the literal set explodes, so a Set stores HOW the
//	lengths are formed and answers questions about them analytically.
//
// ✨ Query surface (cheap, analytical):
//   - Min, Max, FixedLength
//   - Residues / Mod: the reachable remainders modulo a divisor
//   - IsAlignedAt / IsAlignedAtByte: are all lengths multiples of N bits?
//
// Composition (each call returns a new immutable Set):
//   - PadToAlignment: round every length up to a multiple of N
//   - Repeat / RepeatRange: fixed and variable-length arrays
//   - Concatenate / Add / AddBits: fields laid end to end
//   - Unite / Or: alternatives of a tagged union
//
// ⚠️ Approximate equality:
//
//	Equal compares Min, Max and the residues modulo 32 only. Two different
//	sets that agree on those three properties compare equal. This is a known,
//	intentional imprecision: exact equality needs the full expansion, whose
//	cost is unbounded. Hash covers (Min, Max) only, so it stays consistent
//	with Equal.
//
// 🐢 Slow escape hatch:
//
//	Expand, Len and All materialize the exact set. They exist for tests and
//	for layouts already known to be small. Slow expansions are logged with a
//	stack trace, and an optional budget turns runaway expansions into
//	ErrExpansionBudgetExceeded (see operator.WithExpansionBudget).
//
// ⚙️ Usage:
//
//	header := bitlength.MustNew(8)
//	item := bitlength.MustNew(12)
//	items, _ := item.RepeatRange(200)
//	payload, _ := bitlength.Concatenate(header, items)
//	framed, _ := payload.PadToAlignment(8)
//
//	framed.Min()             // 8
//	framed.Max()             // 2408
//	framed.IsAlignedAtByte() // true
//
// Sharing:
//
//	A Set built from another Set reuses its tree and cache. Composition never
//	copies operands, so large schemas built field by field stay linear in size.
package bitlength
