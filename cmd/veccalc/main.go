// Command veccalc evaluates vector operations from the command line.
//
// Usage:
//
//	veccalc [flags] <op> <operands...>
//	veccalc batch -f jobs.yaml
//
// Vectors are comma-separated element lists. The element type is chosen with
// --type and every operation goes through the generic vector package, so the
// same command works for floats, integers, Q16.16 fixed point and decimals.
//
// Examples:
//
//	veccalc dot 1,2,3 4,5,6
//	veccalc --type fixed norm 3,4
//	veccalc --type decimal add 0.1,0.2 0.2,0.1
//	veccalc lerp 0,0 10,20 0.25
//	veccalc add -1,2 3,-4
//	veccalc info
package main

import (
	"os"
)

func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
