// SPDX-License-Identifier: MIT

// Package layout reads YAML descriptions of serialized layouts and builds
// the bitlength.Set of each.
//
// 🧩 Forms (each YAML value is exactly one):
//
//	8                          a fixed length
//	[8, 16]  or  {bits: [..]}  a literal set of lengths
//	{concat: [a, b, ...]}      fields end to end
//	{union: [a, b, ...]}       one of several alternatives
//	{pad: 8, of: x}            x rounded up to a multiple of 8
//	{repeat: 4, of: x}         exactly 4 copies of x
//	{repeat_range: 4, of: x}   between 0 and 4 copies of x
//	{ref: name}                a named type from the types section
//
// 📄 Document:
//
//	types:
//	  header: {concat: [8, {bits: [16, 24]}]}
//	root:
//	  concat:
//	    - {ref: header}
//	    - {repeat_range: 4, of: {ref: header}}
//
// Named types may refer to each other in any order; cycles are rejected.
// Every reference to a name reuses the same Set, so shared subtrees share
// one cache.
package layout
