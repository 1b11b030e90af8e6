package typo

// Introspector queries the generic supertype and interface declarations
// of a single type. The declared references are captured once at
// construction and frozen; later registry changes are never reflected.
type Introspector struct {
	reg        Registry
	target     RawType
	superclass TypeRef
	interfaces []TypeRef
}

// New builds an Introspector over a type identity.
func New(reg Registry, target RawType) *Introspector {
	ifaces := append([]TypeRef(nil), target.Interfaces()...)
	return &Introspector{
		reg:        reg,
		target:     target,
		superclass: target.Superclass(),
		interfaces: ifaces,
	}
}

// Of builds an Introspector over a live value by resolving its runtime
// type identity through the registry. Absent when the value's type is
// not registered.
func Of(reg Registry, value any) (*Introspector, bool) {
	rt, ok := reg.TypeOf(value)
	if !ok {
		return nil, false
	}
	return New(reg, rt), true
}

// Target returns the inspected type identity.
func (in *Introspector) Target() RawType {
	return in.target
}

// HasGenericSuperclass reports whether the captured supertype reference
// is parameterized. False when there is no supertype at all.
func (in *Introspector) HasGenericSuperclass() bool {
	return isParameterized(in.superclass)
}

// Superclass returns a descriptor for the raw supertype, independent of
// its genericity. Absent when the type has no supertype, or when the raw
// component of a parameterized supertype reference is unresolvable.
func (in *Introspector) Superclass() (*Descriptor, bool) {
	if in.superclass == nil {
		return nil, false
	}
	rt, ok := ResolveRawType(in.reg, in.superclass)
	if !ok {
		return nil, false
	}
	d, err := Describe(in.reg, RawRef{Type: rt})
	if err != nil {
		return nil, false
	}
	return d, true
}

// GenericSuperclass returns the generic descriptor of the supertype
// reference. Absent unless HasGenericSuperclass.
func (in *Introspector) GenericSuperclass() (*GenericDescriptor, bool) {
	if !isParameterized(in.superclass) {
		return nil, false
	}
	g, err := NewGenericDescriptor(in.reg, in.superclass)
	if err != nil {
		return nil, false
	}
	return g, true
}

// AllInterfaces returns one descriptor per directly implemented
// interface, classified by raw identity regardless of genericity, in
// declaration order. An interface whose raw component cannot be resolved
// is still represented, as a parameterized descriptor over the captured
// reference.
func (in *Introspector) AllInterfaces() []*Descriptor {
	out := make([]*Descriptor, 0, len(in.interfaces))
	for _, ref := range in.interfaces {
		if rt, ok := ResolveRawType(in.reg, ref); ok {
			ref = RawRef{Type: rt}
		}
		d, err := Describe(in.reg, ref)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

// HasGenericInterfaces reports whether at least one captured interface
// reference is parameterized.
func (in *Introspector) HasGenericInterfaces() bool {
	for _, ref := range in.interfaces {
		if isParameterized(ref) {
			return true
		}
	}
	return false
}

// GenericInterfaces returns a generic descriptor for each implemented
// interface whose captured reference is parameterized, in declaration
// order. Interfaces without type arguments are omitted entirely, never
// represented as empty-argument descriptors.
func (in *Introspector) GenericInterfaces() []*GenericDescriptor {
	var out []*GenericDescriptor
	for _, ref := range in.interfaces {
		if !isParameterized(ref) {
			continue
		}
		g, err := NewGenericDescriptor(in.reg, ref)
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	return out
}

// FindDescriptor scans descriptors in order and returns the first whose
// Matches holds for target. Deterministic first-match-wins under
// duplicates; absent when nothing matches.
func FindDescriptor(descriptors []*Descriptor, target RawType) (*Descriptor, bool) {
	for _, d := range descriptors {
		if d.Matches(target) {
			return d, true
		}
	}
	return nil, false
}

func isParameterized(ref TypeRef) bool {
	pr, ok := ref.(ParameterizedRef)
	return ok && len(pr.Args) > 0
}
