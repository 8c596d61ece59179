//go:build !amd64 && !arm64

package arith

import "github.com/cwbudde/algo-vector/internal/cpu"

// algo-vecmath falls back to scalar Go here, which is still correct.
const blockLevel = cpu.SIMDNone
