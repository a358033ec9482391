// SPDX-License-Identifier: MIT
package bitlength_test

import (
	"fmt"

	"github.com/katalvlaran/lvlbits/bitlength"
)

// ExampleConcatenate models a message: an 8-bit tag followed by up to 200
// 12-bit items, padded to whole bytes.
func ExampleConcatenate() {
	tag := bitlength.MustNew(8)
	item := bitlength.MustNew(12)

	items, _ := item.RepeatRange(200)
	body, _ := bitlength.Concatenate(tag, items)
	framed, _ := body.PadToAlignment(8)

	fmt.Println(framed)
	fmt.Println(framed.Min(), framed.Max(), framed.FixedLength())
	fmt.Println(body.IsAlignedAtByte(), framed.IsAlignedAtByte())
	// Output:
	// pad(8,concat({8},repeat_range(200,{12})))
	// 8 2408 false
	// false true
}

// ExampleSet_Mod prints the reachable residues of a tagged union.
func ExampleSet_Mod() {
	small := bitlength.MustNew([]int{8, 16})
	large := bitlength.MustNew(12)
	u := small.Or(large)

	m, _ := u.Mod(8)
	fmt.Println(m)
	// Output:
	// {0,4}
}

// ExampleSet_Equal shows the approximate equality contract.
func ExampleSet_Equal() {
	a := bitlength.MustNew([]int{0, 64})
	b := bitlength.MustNew([]int{0, 32, 64})

	fmt.Println(a.Equal(b))

	n, _ := a.Len()
	m, _ := b.Len()
	fmt.Println(n, m)
	// Output:
	// true
	// 2 3
}
