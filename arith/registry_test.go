package arith

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vector/internal/cpu"
)

type namedProvider struct {
	Builtin[float32]
	name string
}

func TestRegistry_RegisterAndEntries(t *testing.T) {
	reg := &Registry{}

	RegisterIn(reg, Entry[float32]{Name: "generic", Priority: 0, Provider: Builtin[float32]{}})
	RegisterIn(reg, Entry[float32]{Name: "fast", SIMDLevel: SIMDAVX2, Priority: 20, Provider: Builtin[float32]{}})
	RegisterIn(reg, Entry[int]{Name: "generic", Provider: Builtin[int]{}})

	entries := EntriesIn[float32](reg)
	require.Len(t, entries, 2)
	assert.Equal(t, "fast", entries[0].Name)
	assert.Equal(t, "generic", entries[1].Name)
	assert.Equal(t, "float32", entries[0].Type)

	assert.Len(t, EntriesIn[int](reg), 1)
	assert.Empty(t, EntriesIn[uint8](reg))
	assert.Equal(t, []string{"float32", "int"}, reg.Types())
}

func TestRegistry_LookupPriority(t *testing.T) {
	t.Cleanup(cpu.ResetDetection)

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"AVX2 available - select avx2", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{"SSE2 only - select sse2", cpu.Features{HasSSE2: true}, "sse2"},
		{"No SIMD - select generic", cpu.Features{}, "generic"},
		{"ForceGeneric - select generic", cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			// Registration order is deliberately not priority order.
			reg := &Registry{}
			RegisterIn(reg, Entry[float32]{Name: "generic", Priority: 0, Provider: namedProvider{name: "generic"}})
			RegisterIn(reg, Entry[float32]{Name: "avx2", SIMDLevel: SIMDAVX2, Priority: 20, Provider: namedProvider{name: "avx2"}})
			RegisterIn(reg, Entry[float32]{Name: "sse2", SIMDLevel: SIMDSSE2, Priority: 10, Provider: namedProvider{name: "sse2"}})

			p, err := LookupIn[float32](reg)
			require.NoError(t, err)
			np, ok := p.(namedProvider)
			require.True(t, ok)
			assert.Equal(t, tt.want, np.name)
		})
	}
}

func TestRegistry_LookupMissing(t *testing.T) {
	reg := &Registry{}

	p, err := LookupIn[complex128](reg)
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoProvider))
	assert.Contains(t, err.Error(), "complex128")
}

func TestRegistry_LookupNoCompatibleEntry(t *testing.T) {
	t.Cleanup(cpu.ResetDetection)
	cpu.SetForcedFeatures(cpu.Features{})

	reg := &Registry{}
	RegisterIn(reg, Entry[float32]{Name: "avx2", SIMDLevel: SIMDAVX2, Provider: Builtin[float32]{}})

	_, err := LookupIn[float32](reg)
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestRegistry_LookupCachesSelection(t *testing.T) {
	t.Cleanup(cpu.ResetDetection)
	cpu.SetForcedFeatures(cpu.Features{HasAVX2: true})

	reg := &Registry{}
	RegisterIn(reg, Entry[float32]{Name: "generic", Provider: namedProvider{name: "generic"}})
	RegisterIn(reg, Entry[float32]{Name: "avx2", SIMDLevel: SIMDAVX2, Priority: 20, Provider: namedProvider{name: "avx2"}})

	p, err := LookupIn[float32](reg)
	require.NoError(t, err)
	assert.Equal(t, "avx2", p.(namedProvider).name)

	// Features changing after resolution do not affect the cached choice.
	cpu.SetForcedFeatures(cpu.Features{})
	p, err = LookupIn[float32](reg)
	require.NoError(t, err)
	assert.Equal(t, "avx2", p.(namedProvider).name)
}

func TestRegistry_RegisterInvalidatesCache(t *testing.T) {
	t.Cleanup(cpu.ResetDetection)
	cpu.SetForcedFeatures(cpu.Features{})

	reg := &Registry{}
	RegisterIn(reg, Entry[float32]{Name: "generic", Provider: namedProvider{name: "generic"}})

	p, err := LookupIn[float32](reg)
	require.NoError(t, err)
	assert.Equal(t, "generic", p.(namedProvider).name)

	RegisterIn(reg, Entry[float32]{Name: "custom", Priority: 5, Provider: namedProvider{name: "custom"}})
	p, err = LookupIn[float32](reg)
	require.NoError(t, err)
	assert.Equal(t, "custom", p.(namedProvider).name)
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	reg := &Registry{}
	RegisterIn(reg, Entry[int32]{Name: "generic", Provider: Builtin[int32]{}})

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := LookupIn[int32](reg)
			if err != nil {
				errs <- err
				return
			}
			if p.Add(2, 3) != 5 {
				errs <- errors.New("wrong provider")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestRegistry_Reset(t *testing.T) {
	reg := &Registry{}
	RegisterIn(reg, Entry[int]{Name: "generic", Provider: Builtin[int]{}})
	_, err := LookupIn[int](reg)
	require.NoError(t, err)

	reg.Reset()
	assert.Empty(t, EntriesIn[int](reg))
	_, err = LookupIn[int](reg)
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestRegistry_Generation(t *testing.T) {
	reg := &Registry{}
	assert.Zero(t, reg.Generation())

	RegisterIn(reg, Entry[int]{Name: "generic", Provider: Builtin[int]{}})
	assert.Equal(t, uint64(1), reg.Generation())

	_, err := LookupIn[int](reg)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), reg.Generation(), "lookups leave the generation alone")

	reg.Reset()
	assert.Equal(t, uint64(2), reg.Generation())
}

func TestRegisterNilProviderPanics(t *testing.T) {
	reg := &Registry{}
	assert.Panics(t, func() {
		RegisterIn(reg, Entry[int]{Name: "nil"})
	})
}

func TestGlobalBuiltins(t *testing.T) {
	for _, name := range []string{"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64"} {
		assert.Contains(t, Global.Types(), name)
	}

	_, err := Lookup[int16]()
	require.NoError(t, err)
	assert.NotPanics(t, func() { MustLookup[uint64]() })
	assert.Panics(t, func() { MustLookup[complex64]() })

	entries := Entries[float64]()
	require.Len(t, entries, 2)
	assert.Equal(t, "vecmath", entries[0].Name)
	assert.Equal(t, "generic", entries[1].Name)
}

func TestSetLoggerRecordsResolution(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	reg := &Registry{}
	RegisterIn(reg, Entry[uint16]{Name: "generic", Provider: Builtin[uint16]{}})
	_, err := LookupIn[uint16](reg)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "arith: resolved provider")
	assert.Contains(t, buf.String(), "type=uint16")
	assert.Contains(t, buf.String(), "provider=generic")
}
