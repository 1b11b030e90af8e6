package typo

type refKind int

const (
	rawKind refKind = iota
	parameterizedKind
)

// Descriptor is an immutable classification of a single type reference:
// tagged as exactly one of raw or parameterized, carrying the original
// reference and a trait bitset computed at construction.
type Descriptor struct {
	reg   Registry
	kind  refKind
	raw   RawType          // raw descriptors only
	param ParameterizedRef // parameterized descriptors only
	flags Flags
}

// Describe classifies ref into a Descriptor.
//
// A raw reference yields a raw descriptor with its trait bitset computed
// directly. A parameterized reference yields a parameterized descriptor;
// its raw component is looked up by qualified name, and when the lookup
// fails the bitset stays all-false rather than failing the call: erasure
// can make the raw component legitimately unresolvable at the point of
// inspection. Any other reference kind fails with *UnsupportedRefError.
func Describe(reg Registry, ref TypeRef) (*Descriptor, error) {
	switch r := ref.(type) {
	case RawRef:
		if r.Type == nil {
			return nil, &UnsupportedRefError{Ref: ref}
		}
		return &Descriptor{
			reg:   reg,
			kind:  rawKind,
			raw:   r.Type,
			flags: ComputeFlags(r.Type),
		}, nil
	case ParameterizedRef:
		var flags Flags
		if rt, ok := reg.Lookup(r.Raw); ok {
			flags = ComputeFlags(rt)
		} else {
			diagf("typo: raw component %q of %s is unresolved, traits default to none", r.Raw, r)
		}
		return &Descriptor{
			reg:   reg,
			kind:  parameterizedKind,
			param: r,
			flags: flags,
		}, nil
	default:
		return nil, &UnsupportedRefError{Ref: ref}
	}
}

// IsParameterized reports whether the descriptor wraps a parameterized
// reference.
func (d *Descriptor) IsParameterized() bool {
	return d.kind == parameterizedKind
}

// IsGeneric reports whether the wrapped type declares type parameters.
func (d *Descriptor) IsGeneric() bool {
	return d.flags.Has(FlagGeneric)
}

// IsInterface reports whether the wrapped type is an interface.
func (d *Descriptor) IsInterface() bool {
	return d.flags.Has(FlagInterface)
}

// IsAbstract reports whether the wrapped type is abstract in nature.
// True for interfaces as well as abstract classes.
func (d *Descriptor) IsAbstract() bool {
	return d.flags.Has(FlagAbstract)
}

// IsAbstractClass reports whether the wrapped type is an abstract class,
// excluding interfaces.
func (d *Descriptor) IsAbstractClass() bool {
	return d.IsAbstract() && !d.IsInterface()
}

// Flags returns the trait bitset frozen at construction.
func (d *Descriptor) Flags() Flags {
	return d.flags
}

// Matches reports whether the descriptor refers to target. Qualified
// names are the identity of a raw type, so both the raw and the
// parameterized case compare names; a parameterized descriptor never
// considers its type arguments, since erasure leaves nothing finer to
// compare against. Never an interface-value comparison: a RawType
// implementation is not required to be comparable.
func (d *Descriptor) Matches(target RawType) bool {
	if target == nil {
		return false
	}
	switch d.kind {
	case rawKind:
		return d.raw.QualifiedName() == target.QualifiedName()
	case parameterizedKind:
		return d.param.Raw == target.QualifiedName()
	}
	return false
}

// ResolveRawType returns the raw type identity behind the descriptor.
// Always present for a raw descriptor. For a parameterized descriptor it
// is a registry lookup by qualified name: absent when unresolved, never
// an error.
func (d *Descriptor) ResolveRawType() (RawType, bool) {
	if d.kind == rawKind {
		return d.raw, true
	}
	return d.reg.Lookup(d.param.Raw)
}

// String renders the fully qualified name of the wrapped reference,
// including the type-argument notation of a parameterized reference.
func (d *Descriptor) String() string {
	if d.kind == rawKind {
		return d.raw.QualifiedName()
	}
	return d.param.String()
}
