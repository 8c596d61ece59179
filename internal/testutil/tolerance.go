// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Float is the element constraint accepted by the tolerance helpers.
type Float interface {
	~float32 | ~float64
}

// RequireSliceNear fails t if got and want differ in length or if any element
// pair differs by more than eps.
func RequireSliceNear[T Float](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.InDeltaf(t, float64(want[i]), float64(got[i]), eps, "index %d", i)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T Float](t testing.TB, data []T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		require.Falsef(t, math.IsNaN(f) || math.IsInf(f, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the largest absolute element difference of a and b.
func MaxAbsDiff[T Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
