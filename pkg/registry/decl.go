package registry

// Decl is one type declaration to register.
type Decl struct {
	// Name is the fully qualified type name, the registry lookup key.
	Name string

	// TypeParams names the declared type parameters, in order. A
	// non-empty list makes the type generic.
	TypeParams []string

	// Interface marks the type as an interface. Loaders that follow
	// class-hierarchy conventions also mark interfaces abstract.
	Interface bool

	// Abstract marks the type as not directly instantiable.
	Abstract bool

	// Extends is the declared supertype reference, if any.
	Extends *Ref

	// Implements lists the directly implemented interface references,
	// in declaration order.
	Implements []Ref

	// Constructors lists the declared constructors, in order.
	Constructors []CtorDecl

	// GoType optionally binds a live Go type to this declaration so
	// values can be resolved back to it. Either a reflect.Type or any
	// sample value of the type.
	GoType any
}

// Ref is a declaration-side type reference. Build them with Named,
// Generic, Variable and Wildcard.
type Ref struct {
	name     string
	args     []Ref
	variable bool
	wildcard bool
}

// Named references a concrete registered type by qualified name.
func Named(name string) Ref {
	return Ref{name: name}
}

// Generic references a parameterized use of a raw type: the raw
// qualified name plus at least one actual type argument.
func Generic(raw string, args ...Ref) Ref {
	return Ref{name: raw, args: args}
}

// Variable references an unbound type variable. Classification of such
// a reference is rejected by the descriptor layer; it exists so
// declarations can state what a generic type passes along unsubstituted.
func Variable(name string) Ref {
	return Ref{name: name, variable: true}
}

// Wildcard references an unbounded wildcard.
func Wildcard() Ref {
	return Ref{wildcard: true}
}

// String renders the reference in source notation.
func (r Ref) String() string {
	switch {
	case r.wildcard:
		return "?"
	case len(r.args) > 0:
		s := r.name + "<"
		for i, a := range r.args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		return s + ">"
	default:
		return r.name
	}
}
