package source

import (
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/funvibe/typo/pkg/registry"
)

// ScanPackage loads the Go packages matching pattern and registers their
// exported named types.
//
// The mapping to the registry's class-hierarchy model:
//   - type-parameter arity comes from the type's declared type parameters
//   - interface types carry the interface and abstract traits
//   - the first embedded struct field of a struct maps to the supertype
//     reference; embedded interfaces (of structs and interfaces alike)
//     map to implemented-interface references
//   - instantiated embedded types become parameterized references, with
//     type parameters of the embedding type as variable references
//   - NewT-style functions become constructor declarations (metadata
//     only: a scanned package is not loaded, so nothing is invocable)
//
// Referenced types outside the scanned packages are registered as
// minimal stub declarations so reference validation holds.
func ScanPackage(pattern string, reg *registry.Registry) error {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedImports |
			packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return fmt.Errorf("loading %s: %w", pattern, err)
	}

	var errs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("package errors:\n  %s", strings.Join(errs, "\n  "))
	}

	sc := &scanner{reg: reg, done: make(map[string]bool)}
	for _, pkg := range pkgs {
		if err := sc.scan(pkg); err != nil {
			return err
		}
	}
	return nil
}

type scanner struct {
	reg  *registry.Registry
	done map[string]bool
}

// scan collects the declarations of one package and registers them as a
// single batch. Batch registration lets mutually embedding types (legal
// through pointer embedding) resolve regardless of declaration order.
func (s *scanner) scan(pkg *packages.Package) error {
	scope := pkg.Types.Scope()

	var decls []registry.Decl
	var deps []string
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		qn := QualifiedName(tn)
		if s.done[qn] {
			continue
		}
		s.done[qn] = true
		d, dep := declOf(named, scope)
		decls = append(decls, d)
		deps = append(deps, dep...)
	}

	// Stubs for references leaving the scanned packages, so reference
	// validation holds. scope.Names is sorted, so dep order is stable.
	for _, dep := range deps {
		if s.done[dep] {
			continue
		}
		s.done[dep] = true
		if _, ok := s.reg.Lookup(dep); ok {
			continue
		}
		decls = append(decls, registry.Decl{Name: dep})
	}

	if len(decls) == 0 {
		return nil
	}
	if err := s.reg.RegisterAll(decls); err != nil {
		return fmt.Errorf("scanning %s: %w", pkg.PkgPath, err)
	}
	return nil
}

// declOf maps one named type to a declaration, returning the qualified
// names of the plain named types its references depend on.
func declOf(named *types.Named, scope *types.Scope) (registry.Decl, []string) {
	d := registry.Decl{Name: QualifiedName(named.Obj())}
	for i := 0; i < named.TypeParams().Len(); i++ {
		d.TypeParams = append(d.TypeParams, named.TypeParams().At(i).Obj().Name())
	}

	var deps []string
	switch u := named.Underlying().(type) {
	case *types.Interface:
		d.Interface = true
		d.Abstract = true
		for i := 0; i < u.NumEmbeddeds(); i++ {
			ref, dep := refOf(u.EmbeddedType(i))
			d.Implements = append(d.Implements, ref)
			deps = append(deps, dep...)
		}
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			if !f.Embedded() {
				continue
			}
			ref, dep := refOf(f.Type())
			deps = append(deps, dep...)
			if isInterfaceType(f.Type()) {
				d.Implements = append(d.Implements, ref)
			} else if d.Extends == nil {
				d.Extends = &ref
			}
		}
	}

	d.Constructors = constructorDecls(named, scope)
	return d, deps
}

// refOf maps a go/types type to a declaration reference, returning the
// qualified names of plain named types the reference depends on.
func refOf(t types.Type) (registry.Ref, []string) {
	switch tt := t.(type) {
	case *types.Named:
		qn := QualifiedName(tt.Obj())
		if args := tt.TypeArgs(); args != nil && args.Len() > 0 {
			refs := make([]registry.Ref, args.Len())
			var deps []string
			for i := 0; i < args.Len(); i++ {
				ref, dep := refOf(args.At(i))
				refs[i] = ref
				deps = append(deps, dep...)
			}
			return registry.Generic(qn, refs...), deps
		}
		return registry.Named(qn), []string{qn}
	case *types.TypeParam:
		return registry.Variable(tt.Obj().Name()), nil
	case *types.Pointer:
		return refOf(tt.Elem())
	case *types.Basic:
		qn := tt.Name()
		return registry.Named(qn), []string{qn}
	default:
		// Slices, maps, funcs and the rest have no place in a
		// class-hierarchy reference; represent them as variables so
		// classification rejects them instead of faking a raw type.
		return registry.Variable(t.String()), nil
	}
}

// constructorDecls maps NewT-style package functions to constructor
// declarations for the type T.
func constructorDecls(named *types.Named, scope *types.Scope) []registry.CtorDecl {
	typeName := named.Obj().Name()
	fn, ok := scope.Lookup("New" + typeName).(*types.Func)
	if !ok {
		return nil
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || !returnsType(sig, named) {
		return nil
	}

	params := make([]string, sig.Params().Len())
	for i := 0; i < sig.Params().Len(); i++ {
		params[i] = typeNameOf(sig.Params().At(i).Type())
	}
	return []registry.CtorDecl{{Params: params}}
}

// returnsType reports whether the signature's first result is T or *T.
func returnsType(sig *types.Signature, named *types.Named) bool {
	if sig.Results().Len() == 0 {
		return false
	}
	res := sig.Results().At(0).Type()
	if ptr, ok := res.(*types.Pointer); ok {
		res = ptr.Elem()
	}
	resNamed, ok := res.(*types.Named)
	return ok && resNamed.Obj() == named.Obj()
}

// typeNameOf renders the qualified name of a formal parameter type.
func typeNameOf(t types.Type) string {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		return QualifiedName(named.Obj())
	}
	return t.String()
}

// QualifiedName renders the registry key of a type object:
// "<import path>.<name>" for package-level types, the bare name for
// universe types.
func QualifiedName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

func isInterfaceType(t types.Type) bool {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	return types.IsInterface(t)
}
