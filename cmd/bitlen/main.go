// SPDX-License-Identifier: MIT

// Command bitlen prints the bit length properties of a YAML layout:
// extremes, alignment and reachable residues, all computed analytically.
//
// Usage:
//
//	bitlen [--config FILE] [-d 8 -d 32] [--types] [--expand] LAYOUT.yaml
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
