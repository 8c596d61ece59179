package vector

import (
	"testing"

	"github.com/cwbudde/algo-vector/fixed"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"3", 3},
	{"64", 64},
	{"1024", 1024},
	{"16384", 16384},
}

func benchPair(size int) (*Vector[float64], *Vector[float64]) {
	a, _ := Generate(size, func(i int) float64 { return float64(i) + 0.5 })
	b, _ := Generate(size, func(i int) float64 { return float64(size-i) * 0.1 })
	return a, b
}

func BenchmarkAddTo(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			x, y := benchPair(tc.size)
			dst, _ := Make[float64](tc.size)

			b.SetBytes(int64(tc.size * 8 * 3))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = AddTo(dst, x, y)
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			x, y := benchPair(tc.size)

			b.SetBytes(int64(tc.size * 8 * 3))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Add(x, y)
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			x, y := benchPair(tc.size)

			b.SetBytes(int64(tc.size * 8 * 2))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Dot(x, y)
			}
		})
	}
}

func BenchmarkAddToFixed(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			x, _ := Generate(tc.size, func(i int) fixed.Q16 { return fixed.FromInt(i) })
			y, _ := Generate(tc.size, func(i int) fixed.Q16 { return fixed.FromFloat(0.5) })
			dst, _ := Make[fixed.Q16](tc.size)

			b.SetBytes(int64(tc.size * 4 * 3))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = AddTo(dst, x, y)
			}
		})
	}
}
