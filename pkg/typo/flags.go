package typo

// Flags is the trait bitset of a raw type, computed once and frozen
// into every descriptor that wraps it.
type Flags uint8

const (
	// FlagGeneric is set when the type declares at least one type parameter.
	FlagGeneric Flags = 1 << iota
	// FlagInterface is set for interface types.
	FlagInterface
	// FlagAbstract is set for types that cannot be instantiated directly.
	FlagAbstract
)

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// ComputeFlags derives the trait bitset from a raw type identity.
// Pure: no registry lookups, no caching.
func ComputeFlags(t RawType) Flags {
	var f Flags
	if t.TypeParamCount() > 0 {
		f |= FlagGeneric
	}
	if t.IsInterface() {
		f |= FlagInterface
	}
	if t.IsAbstract() {
		f |= FlagAbstract
	}
	return f
}
