package typo

import "strings"

// TypeRef is a reference to a type as written at a declaration site,
// before any substitution of generic parameters. Exactly four kinds
// exist; only RawRef and ParameterizedRef can be classified into
// descriptors, the other two are rejected by Describe.
type TypeRef interface {
	String() string
	typeRef()
}

// RawRef wraps a resolved, non-parameterized type identity.
type RawRef struct {
	Type RawType
}

func (r RawRef) String() string {
	if r.Type == nil {
		return "<nil>"
	}
	return r.Type.QualifiedName()
}

func (RawRef) typeRef() {}

// ParameterizedRef is a raw type name plus the ordered actual type
// arguments supplied at the usage site. The raw component is kept by
// name: under erasure its identity may legitimately be unresolvable at
// the point of inspection.
type ParameterizedRef struct {
	Raw  string
	Args []TypeRef
}

func (r ParameterizedRef) String() string {
	parts := make([]string, len(r.Args))
	for i, a := range r.Args {
		parts[i] = a.String()
	}
	return r.Raw + "<" + strings.Join(parts, ", ") + ">"
}

func (ParameterizedRef) typeRef() {}

// VariableRef is an unbound type variable (e.g. the T of a generic
// declaration that was never substituted).
type VariableRef struct {
	Name string
}

func (r VariableRef) String() string { return r.Name }

func (VariableRef) typeRef() {}

// WildcardRef is an unbounded wildcard reference.
type WildcardRef struct{}

func (WildcardRef) String() string { return "?" }

func (WildcardRef) typeRef() {}
