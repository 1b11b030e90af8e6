package typo

import (
	"fmt"
	"strings"
)

// UnsupportedRefError indicates a reference kind that cannot be
// classified. Under erasure a wildcard or unbound type variable carries
// no recoverable raw identity, so the contract rejects it outright
// instead of approximating.
type UnsupportedRefError struct {
	Ref TypeRef
}

func (e *UnsupportedRefError) Error() string {
	return fmt.Sprintf("unsupported type reference [%s]: only raw and parameterized references can be classified", e.Ref)
}

// InvalidDescriptorError indicates an attempt to build a GenericDescriptor
// from a reference that is not parameterized (or has no type arguments).
type InvalidDescriptorError struct {
	Ref TypeRef
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("generic descriptor requires a parameterized reference with type arguments, got [%s]", e.Ref)
}

// EmptyArgumentListError indicates a TypeArgumentList constructed from
// zero descriptors.
type EmptyArgumentListError struct{}

func (e *EmptyArgumentListError) Error() string {
	return "type argument list must contain at least one descriptor"
}

// ListAccessError indicates First/Last on an empty TypeArgumentList.
// Construction already forbids empty lists, but the accessors still guard.
type ListAccessError struct {
	Op string
}

func (e *ListAccessError) Error() string {
	return fmt.Sprintf("%s on empty type argument list", e.Op)
}

// NoConstructorError indicates that the target type declares no
// constructor whose ordered formal parameter types exactly equal the
// accumulated argument types.
type NoConstructorError struct {
	Target string
	Params []string
}

func (e *NoConstructorError) Error() string {
	return fmt.Sprintf("no constructor on %s matching (%s)", e.Target, strings.Join(e.Params, ", "))
}

// InaccessibleConstructorError indicates a signature match on a
// constructor that may not be invoked.
type InaccessibleConstructorError struct {
	Target string
	Params []string
}

func (e *InaccessibleConstructorError) Error() string {
	return fmt.Sprintf("constructor (%s) on %s is not accessible", strings.Join(e.Params, ", "), e.Target)
}

// InvocationError wraps a failure raised while invoking a matched
// constructor, including a value not actually assignable to its
// declared parameter type.
type InvocationError struct {
	Target string
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("constructing %s: %v", e.Target, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }
