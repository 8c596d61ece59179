package arith

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/cwbudde/algo-vector/internal/cpu"
)

// ErrNoProvider is returned when no compatible provider is registered for an
// element type.
var ErrNoProvider = errors.New("arith: no provider registered")

// SIMDLevel is the instruction set an entry depends on.
type SIMDLevel = cpu.SIMDLevel

const (
	SIMDNone = cpu.SIMDNone
	SIMDSSE2 = cpu.SIMDSSE2
	SIMDAVX2 = cpu.SIMDAVX2
	SIMDNEON = cpu.SIMDNEON
)

// Entry is one registered provider for element type T.
type Entry[T any] struct {
	// Name identifies the implementation (e.g. "generic", "vecmath").
	Name string

	// SIMDLevel is the instruction set required to use this entry.
	SIMDLevel SIMDLevel

	// Priority orders compatible entries; higher wins. Built-in generic
	// providers use 0, accelerated ones 10 and above.
	Priority int

	Provider Provider[T]
}

// EntryInfo describes a registered entry without its provider.
type EntryInfo struct {
	Type      string
	Name      string
	SIMDLevel SIMDLevel
	Priority  int
}

type entry struct {
	info     EntryInfo
	provider any
}

// Registry holds provider entries keyed by element type and caches the
// selected provider per type.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type][]entry
	sorted  map[reflect.Type]bool

	resolved sync.Map // reflect.Type -> Provider[T]
	group    singleflight.Group
	gen      atomic.Uint64
}

// Global is the registry used by Register and Lookup.
var Global = &Registry{}

var logger = func() *atomic.Pointer[slog.Logger] {
	var p atomic.Pointer[slog.Logger]
	p.Store(slog.New(slog.DiscardHandler))
	return &p
}()

// SetLogger installs the logger used for resolution diagnostics. A nil logger
// discards output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Register adds e to the global registry.
func Register[T any](e Entry[T]) {
	RegisterIn(Global, e)
}

// RegisterIn adds e to r and drops any cached selection for T.
func RegisterIn[T any](r *Registry, e Entry[T]) {
	if e.Provider == nil {
		panic("arith: Register with nil provider")
	}
	typ := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[reflect.Type][]entry)
		r.sorted = make(map[reflect.Type]bool)
	}
	r.entries[typ] = append(r.entries[typ], entry{
		info: EntryInfo{
			Type:      typ.String(),
			Name:      e.Name,
			SIMDLevel: e.SIMDLevel,
			Priority:  e.Priority,
		},
		provider: e.Provider,
	})
	r.sorted[typ] = false
	r.resolved.Delete(typ)
	r.gen.Add(1)
}

// Generation counts the changes made to r by RegisterIn and Reset. Caches
// derived from a resolved provider compare it to detect that the selection
// may have changed.
func (r *Registry) Generation() uint64 {
	return r.gen.Load()
}

// Lookup returns the selected provider for T from the global registry.
func Lookup[T any]() (Provider[T], error) {
	return LookupIn[T](Global)
}

// MustLookup is like Lookup but panics when no provider is registered.
func MustLookup[T any]() Provider[T] {
	p, err := LookupIn[T](Global)
	if err != nil {
		panic(err)
	}
	return p
}

// LookupIn returns the highest-priority provider for T in r that the current
// CPU supports. The selection is made once and cached; concurrent first
// callers share a single resolution.
func LookupIn[T any](r *Registry) (Provider[T], error) {
	typ := reflect.TypeFor[T]()
	if p, ok := r.resolved.Load(typ); ok {
		return p.(Provider[T]), nil
	}

	v, err, _ := r.group.Do(fmt.Sprintf("%p", typ), func() (any, error) {
		if p, ok := r.resolved.Load(typ); ok {
			return p, nil
		}
		features := cpu.DetectFeatures()
		e := r.best(typ, features)
		if e == nil {
			return nil, fmt.Errorf("%w for %v", ErrNoProvider, typ)
		}
		r.resolved.Store(typ, e.provider)
		logger.Load().Debug("arith: resolved provider",
			"type", e.info.Type,
			"provider", e.info.Name,
			"priority", e.info.Priority,
			"simd", e.info.SIMDLevel.String(),
			"force_generic", features.ForceGeneric)
		return e.provider, nil
	})
	if err != nil {
		return nil, err
	}
	p, ok := v.(Provider[T])
	if !ok {
		return nil, fmt.Errorf("%w for %v: provider has type %T", ErrNoProvider, typ, v)
	}
	return p, nil
}

// best returns the highest-priority entry for typ supported by features.
func (r *Registry) best(typ reflect.Type, features cpu.Features) *entry {
	r.mu.Lock()
	if !r.sorted[typ] {
		sortByPriority(r.entries[typ])
		if r.sorted != nil {
			r.sorted[typ] = true
		}
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.entries[typ]
	for i := range list {
		if cpu.Supports(features, list[i].info.SIMDLevel) {
			e := list[i]
			return &e
		}
	}
	return nil
}

// sortByPriority orders entries by descending priority, keeping registration
// order among equals.
func sortByPriority(entries []entry) {
	for i := 1; i < len(entries); i++ {
		key := entries[i]
		j := i - 1
		for j >= 0 && entries[j].info.Priority < key.info.Priority {
			entries[j+1] = entries[j]
			j--
		}
		entries[j+1] = key
	}
}

// Entries lists the global entries for T, highest priority first.
func Entries[T any]() []EntryInfo {
	return EntriesIn[T](Global)
}

// EntriesIn lists the entries for T in r, highest priority first.
func EntriesIn[T any](r *Registry) []EntryInfo {
	typ := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted[typ] {
		sortByPriority(r.entries[typ])
		if r.sorted != nil {
			r.sorted[typ] = true
		}
	}
	out := make([]EntryInfo, len(r.entries[typ]))
	for i, e := range r.entries[typ] {
		out[i] = e.info
	}
	return out
}

// Types lists, sorted, the element types with at least one entry in r.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for typ := range r.entries {
		out = append(out, typ.String())
	}
	slices.Sort(out)
	return out
}

// Reset clears all entries and cached selections. Intended for tests on
// private registries.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = nil
	r.resolved.Clear()
	r.gen.Add(1)
}
