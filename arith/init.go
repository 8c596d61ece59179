package arith

// init registers the built-in providers.
//
// The generic entries have priority 0 and no SIMD requirement, so every
// element type below always resolves. float64 also gets the algo-vecmath block
// provider, preferred whenever the CPU supports it and generic selection is
// not forced.
func init() {
	registerBuiltin[int]()
	registerBuiltin[int8]()
	registerBuiltin[int16]()
	registerBuiltin[int32]()
	registerBuiltin[int64]()
	registerBuiltin[uint]()
	registerBuiltin[uint8]()
	registerBuiltin[uint16]()
	registerBuiltin[uint32]()
	registerBuiltin[uint64]()
	registerBuiltin[float32]()
	registerBuiltin[float64]()

	Register(Entry[float64]{
		Name:      "vecmath",
		SIMDLevel: blockLevel,
		Priority:  10,
		Provider:  Float64Block{},
	})
}

func registerBuiltin[T Number]() {
	Register(Entry[T]{
		Name:      "generic",
		SIMDLevel: SIMDNone,
		Priority:  0,
		Provider:  Builtin[T]{},
	})
}
