package vector

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/cwbudde/algo-vector/arith"
)

// identity selects the constant an identity vector is filled with.
type identity uint8

const (
	identityZero identity = iota
	identityOne
)

func (id identity) String() string {
	if id == identityOne {
		return "one"
	}
	return "zero"
}

// fillStrategy is how identity vectors of one element type are built.
type fillStrategy uint8

const (
	// strategyDefault relies on make() already producing the identity.
	strategyDefault fillStrategy = iota + 1
	// strategyFill writes the identity into every element.
	strategyFill
)

func (s fillStrategy) String() string {
	switch s {
	case strategyDefault:
		return "default"
	case strategyFill:
		return "fill"
	default:
		return "unknown"
	}
}

type strategyKey struct {
	typ reflect.Type
	id  identity
}

// decision is a fill strategy and the registry generation it was made under.
type decision struct {
	strategy fillStrategy
	gen      uint64
}

var (
	strategies    sync.Map // strategyKey -> decision
	strategyGroup singleflight.Group
)

var logger = func() *atomic.Pointer[slog.Logger] {
	var p atomic.Pointer[slog.Logger]
	p.Store(slog.New(slog.DiscardHandler))
	return &p
}()

// SetLogger installs the logger used for fill-strategy diagnostics. A nil
// logger discards output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Zero returns a vector of dimension dim filled with the provider's Zero.
func Zero[T any](dim int) (*Vector[T], error) {
	return identityVector[T](dim, identityZero)
}

// One returns a vector of dimension dim filled with the provider's One.
func One[T any](dim int) (*Vector[T], error) {
	return identityVector[T](dim, identityOne)
}

func identityVector[T any](dim int, id identity) (*Vector[T], error) {
	v, err := Make[T](dim)
	if err != nil {
		return nil, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	if strategyFor(p, id) == strategyFill {
		c := constant(p, id)
		for i := range v.elems {
			v.elems[i] = c
		}
	}
	return v, nil
}

func constant[T any](p arith.Provider[T], id identity) T {
	if id == identityOne {
		return p.One()
	}
	return p.Zero()
}

// strategyFor decides once per element type and identity whether T's default
// value already equals the identity. Concurrent first callers share one
// decision. A decision is dropped when the global registry has changed since
// it was made, since a newly registered provider may define other constants.
func strategyFor[T any](p arith.Provider[T], id identity) fillStrategy {
	key := strategyKey{typ: reflect.TypeFor[T](), id: id}
	gen := arith.Global.Generation()
	if d, ok := strategies.Load(key); ok && d.(decision).gen == gen {
		return d.(decision).strategy
	}

	v, _, _ := strategyGroup.Do(fmt.Sprintf("%p/%d/%d", key.typ, key.id, gen), func() (any, error) {
		if d, ok := strategies.Load(key); ok && d.(decision).gen == gen {
			return d.(decision).strategy, nil
		}
		var def T
		s := strategyFill
		if p.Equal(def, constant(p, id)) {
			s = strategyDefault
		}
		strategies.Store(key, decision{strategy: s, gen: gen})
		logger.Load().Debug("vector: fill strategy decided",
			"type", key.typ.String(),
			"identity", id.String(),
			"strategy", s.String(),
			"generation", gen)
		return s, nil
	})
	return v.(fillStrategy)
}
