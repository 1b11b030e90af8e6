package typo

// A hand-built fake of the host capability. Keeping it inside the
// package keeps the introspection logic testable without the real
// registry implementation.

type fakeType struct {
	name       string
	params     int
	iface      bool
	abstract   bool
	super      TypeRef
	interfaces []TypeRef
	ctors      []Constructor
}

func (f *fakeType) QualifiedName() string       { return f.name }
func (f *fakeType) TypeParamCount() int         { return f.params }
func (f *fakeType) IsInterface() bool           { return f.iface }
func (f *fakeType) IsAbstract() bool            { return f.abstract }
func (f *fakeType) Superclass() TypeRef         { return f.super }
func (f *fakeType) Interfaces() []TypeRef       { return f.interfaces }
func (f *fakeType) Constructors() []Constructor { return f.ctors }

type fakeCtor struct {
	params     []string
	accessible bool
	fn         func(args []any) (any, error)
}

func (c *fakeCtor) ParameterTypes() []string { return c.params }
func (c *fakeCtor) Accessible() bool         { return c.accessible }
func (c *fakeCtor) Invoke(args []any) (any, error) {
	return c.fn(args)
}

type fakeRegistry struct {
	types  map[string]*fakeType
	values map[any]*fakeType
}

func newFakeRegistry(types ...*fakeType) *fakeRegistry {
	r := &fakeRegistry{
		types:  make(map[string]*fakeType),
		values: make(map[any]*fakeType),
	}
	for _, t := range types {
		r.types[t.name] = t
	}
	return r
}

func (r *fakeRegistry) add(t *fakeType) *fakeType {
	r.types[t.name] = t
	return t
}

func (r *fakeRegistry) bind(value any, t *fakeType) {
	r.values[value] = t
}

func (r *fakeRegistry) Lookup(qualifiedName string) (RawType, bool) {
	t, ok := r.types[qualifiedName]
	if !ok {
		return nil, false
	}
	return t, true
}

func (r *fakeRegistry) TypeOf(value any) (RawType, bool) {
	t, ok := r.values[value]
	if !ok {
		return nil, false
	}
	return t, true
}
