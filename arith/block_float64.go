package arith

import (
	"github.com/cwbudde/algo-vecmath"
)

// Float64Block is the float64 provider with whole-slice kernels from
// algo-vecmath. Reductions (sums, dot products) stay on the scalar path so
// accumulation order is the same as the generic provider.
type Float64Block struct {
	Builtin[float64]
}

var _ Block[float64] = Float64Block{}

func (Float64Block) AddBlock(dst, a, b []float64) {
	vecmath.AddBlock(dst, a, b)
}

// SubtractBlock computes a + (-b) with the vecmath kernels, which matches a - b
// bit for bit. When dst shares storage with a the negation would clobber a
// before it is read, so that case stays on the scalar loop.
func (Float64Block) SubtractBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("arith: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	if &dst[0] == &a[0] {
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
		return
	}
	vecmath.ScaleBlock(dst, b, -1)
	vecmath.AddBlockInPlace(dst, a)
}

func (Float64Block) MulBlock(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
}

func (Float64Block) ScaleBlock(dst, src []float64, scalar float64) {
	vecmath.ScaleBlock(dst, src, scalar)
}
