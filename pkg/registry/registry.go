// Package registry is the default host type-system capability behind
// pkg/typo: a hand-rolled, name-keyed registry of type declarations.
//
// Callers register declarations (qualified name, type-parameter arity,
// traits, supertype and interface references, constructors) and the
// introspection layer consumes them through the typo.Registry interface.
// Declarations are usually produced by the loaders in internal/source,
// or written by hand for embedded use.
package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/funvibe/typo/pkg/typo"
)

// Registry maps qualified names to registered type declarations and
// live Go types to their registered identities. Safe for concurrent
// queries; registration and queries may interleave, though the usual
// shape is register-then-query.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*entry
	byGo  map[reflect.Type]*entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		types: make(map[string]*entry),
		byGo:  make(map[reflect.Type]*entry),
	}
}

// Register adds one type declaration.
//
// Plain named references in the extends/implements clauses and in type
// argument positions must resolve at registration time: supertypes are
// registered before subtypes, the same guarantee a loaded-type runtime
// gives. A declaration may reference itself in type argument positions
// (e.g. Comparable<Box> on Box). Declarations that reference each other
// cyclically go through RegisterAll instead. The raw component name of a
// parameterized reference is deliberately not required to resolve: that
// is the erasure fail-soft path of the descriptor layer and stays
// exercisable.
//
// Nothing is registered when validation fails.
func (r *Registry) Register(d Decl) error {
	return r.RegisterAll([]Decl{d})
}

// RegisterAll adds a set of type declarations that may reference each
// other in any order, including cyclically. Every entry is inserted
// before any reference materializes, so mutual references within the
// set resolve regardless of declaration order.
//
// Nothing is registered when any declaration fails.
func (r *Registry) RegisterAll(decls []Decl) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var added []string
	fail := func(err error) error {
		for _, name := range added {
			delete(r.types, name)
		}
		return err
	}

	entries := make([]*entry, 0, len(decls))
	for _, d := range decls {
		if d.Name == "" {
			return fail(fmt.Errorf("registry: declaration has no qualified name"))
		}
		if _, exists := r.types[d.Name]; exists {
			return fail(fmt.Errorf("registry: type %s already registered", d.Name))
		}
		e := &entry{decl: d}
		r.types[d.Name] = e
		added = append(added, d.Name)
		entries = append(entries, e)
	}

	for _, e := range entries {
		if err := r.finishLocked(e); err != nil {
			return fail(fmt.Errorf("registry: registering %s: %w", e.decl.Name, err))
		}
	}

	for _, e := range entries {
		if e.decl.GoType == nil {
			continue
		}
		gt, ok := e.decl.GoType.(reflect.Type)
		if !ok {
			gt = reflect.TypeOf(e.decl.GoType)
		}
		r.byGo[gt] = e
	}
	return nil
}

// MustRegister is Register, panicking on error. Intended for fixture and
// bootstrap code where a bad declaration is a programming mistake.
func (r *Registry) MustRegister(d Decl) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// finishLocked materializes declaration references and constructors.
// The entry is already in the table so self-references resolve.
func (r *Registry) finishLocked(e *entry) error {
	if e.decl.Extends != nil {
		ref, err := r.materializeLocked(*e.decl.Extends)
		if err != nil {
			return fmt.Errorf("extends: %w", err)
		}
		e.super = ref
	}
	for _, ir := range e.decl.Implements {
		ref, err := r.materializeLocked(ir)
		if err != nil {
			return fmt.Errorf("implements: %w", err)
		}
		e.ifaces = append(e.ifaces, ref)
	}
	for i, cd := range e.decl.Constructors {
		c, err := newCtor(e.decl.Name, cd)
		if err != nil {
			return fmt.Errorf("constructor %d: %w", i, err)
		}
		e.ctors = append(e.ctors, c)
	}
	return nil
}

func (r *Registry) materializeLocked(ref Ref) (typo.TypeRef, error) {
	switch {
	case ref.wildcard:
		return typo.WildcardRef{}, nil
	case ref.variable:
		return typo.VariableRef{Name: ref.name}, nil
	case len(ref.args) > 0:
		args := make([]typo.TypeRef, len(ref.args))
		for i, a := range ref.args {
			ar, err := r.materializeLocked(a)
			if err != nil {
				return nil, err
			}
			args[i] = ar
		}
		return typo.ParameterizedRef{Raw: ref.name, Args: args}, nil
	default:
		e, ok := r.types[ref.name]
		if !ok {
			return nil, fmt.Errorf("references unregistered type %s (register supertypes first)", ref.name)
		}
		return typo.RawRef{Type: e}, nil
	}
}

// Lookup resolves a qualified name to its registered identity.
func (r *Registry) Lookup(qualifiedName string) (typo.RawType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.types[qualifiedName]
	if !ok {
		return nil, false
	}
	return e, true
}

// TypeOf resolves a live value to its registered runtime type identity.
// A pointer value also matches a declaration registered with the
// pointee type.
func (r *Registry) TypeOf(value any) (typo.RawType, bool) {
	t := reflect.TypeOf(value)
	if t == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.byGo[t]; ok {
		return e, true
	}
	if t.Kind() == reflect.Pointer {
		if e, ok := r.byGo[t.Elem()]; ok {
			return e, true
		}
	}
	return nil, false
}

// Names returns the registered qualified names, sorted. A diagnostics
// snapshot for tooling; the introspection layer never uses it.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// entry implements typo.RawType over a registered declaration.
type entry struct {
	decl   Decl
	super  typo.TypeRef
	ifaces []typo.TypeRef
	ctors  []*ctor
}

func (e *entry) QualifiedName() string { return e.decl.Name }

func (e *entry) TypeParamCount() int { return len(e.decl.TypeParams) }

func (e *entry) IsInterface() bool { return e.decl.Interface }

func (e *entry) IsAbstract() bool { return e.decl.Abstract }

func (e *entry) Superclass() typo.TypeRef { return e.super }

func (e *entry) Interfaces() []typo.TypeRef {
	return append([]typo.TypeRef(nil), e.ifaces...)
}

func (e *entry) Constructors() []typo.Constructor {
	out := make([]typo.Constructor, len(e.ctors))
	for i, c := range e.ctors {
		out[i] = c
	}
	return out
}

func (e *entry) String() string { return e.decl.Name }
