//go:build arm64

package arith

import "github.com/cwbudde/algo-vector/internal/cpu"

const blockLevel = cpu.SIMDNEON
