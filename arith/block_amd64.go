//go:build amd64

package arith

import "github.com/cwbudde/algo-vector/internal/cpu"

// blockLevel is the instruction set the float64 block kernels are tuned for.
const blockLevel = cpu.SIMDSSE2
