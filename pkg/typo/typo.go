// Package typo answers the questions a type-erased runtime cannot answer
// from a value alone: does a type extend a parameterized supertype, and
// with which actual type arguments? Which of its implemented interfaces
// are parameterized? Does a captured type reference match a target type?
//
// The package handles:
//   - Classifying type references into raw/parameterized descriptors
//   - Decomposing parameterized references into their type arguments
//   - Querying a type's supertype and interface declarations
//   - Strict, signature-matched constructor invocation (InstanceBuilder)
//
// All type metadata comes from a host Registry, an injected capability.
// The default implementation lives in pkg/registry; tests (and embedders
// with their own metadata system) supply their own.
package typo

// Registry is the host type-system capability the package consumes.
// Lookups are idempotent, side-effect-free and synchronous; a failed
// lookup yields an absent result, never an error.
type Registry interface {
	// Lookup resolves a fully qualified type name to its identity.
	Lookup(qualifiedName string) (RawType, bool)

	// TypeOf resolves a live value to its registered runtime type identity.
	TypeOf(value any) (RawType, bool)
}

// RawType is a single resolved type identity.
type RawType interface {
	// QualifiedName is the globally unique name of the type, used as
	// the registry lookup key.
	QualifiedName() string

	// TypeParamCount is the declared type-parameter arity.
	TypeParamCount() int

	IsInterface() bool
	IsAbstract() bool

	// Superclass returns the declared supertype reference, or nil when
	// the type has none.
	Superclass() TypeRef

	// Interfaces returns the directly implemented interface references
	// in declaration order.
	Interfaces() []TypeRef

	// Constructors returns the declared constructors in declaration order.
	Constructors() []Constructor
}

// Constructor is one declared constructor of a raw type.
type Constructor interface {
	// ParameterTypes returns the ordered formal parameter type names.
	ParameterTypes() []string

	// Accessible reports whether the constructor may be invoked.
	Accessible() bool

	// Invoke runs the constructor with the given ordered argument values.
	Invoke(args []any) (any, error)
}

// ResolveRawType resolves the raw component of a reference through the
// registry. Absent when the reference carries no resolvable raw type;
// never raises.
func ResolveRawType(reg Registry, ref TypeRef) (RawType, bool) {
	switch r := ref.(type) {
	case RawRef:
		return r.Type, r.Type != nil
	case ParameterizedRef:
		return reg.Lookup(r.Raw)
	}
	return nil, false
}
