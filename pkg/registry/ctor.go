package registry

import (
	"fmt"
	"reflect"
	"strings"
)

// CtorDecl declares one constructor of a type.
type CtorDecl struct {
	// Params is the ordered list of formal parameter type names.
	Params []string

	// Func optionally binds a Go function implementing the constructor.
	// It must take len(Params) arguments and return either a single
	// value or (value, error). A declaration without a bound function is
	// metadata only (loaders that scan static sources produce these);
	// invoking it fails.
	Func any

	// Unexported marks the constructor as declared but not invocable
	// from outside.
	Unexported bool
}

type ctor struct {
	owner      string
	params     []string
	fn         reflect.Value
	unexported bool
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func newCtor(owner string, d CtorDecl) (*ctor, error) {
	c := &ctor{
		owner:      owner,
		params:     append([]string(nil), d.Params...),
		unexported: d.Unexported,
	}
	if d.Func == nil {
		return c, nil
	}

	fn := reflect.ValueOf(d.Func)
	ft := fn.Type()
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("bound value is %s, want func", ft.Kind())
	}
	if ft.IsVariadic() {
		return nil, fmt.Errorf("variadic constructor functions are not supported")
	}
	if ft.NumIn() != len(d.Params) {
		return nil, fmt.Errorf("func takes %d arguments, declaration lists %d", ft.NumIn(), len(d.Params))
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if !ft.Out(1).Implements(errType) {
			return nil, fmt.Errorf("second return value must be error, got %s", ft.Out(1))
		}
	default:
		return nil, fmt.Errorf("func must return a value or (value, error)")
	}
	c.fn = fn
	return c, nil
}

func (c *ctor) ParameterTypes() []string {
	return append([]string(nil), c.params...)
}

func (c *ctor) Accessible() bool {
	return !c.unexported
}

// Invoke calls the bound Go function with the argument values in order.
// A value that is not assignable to its formal parameter makes
// reflect.Call panic; the panic is recovered into an error so the caller
// sees a plain invocation failure.
func (c *ctor) Invoke(args []any) (out any, err error) {
	if !c.fn.IsValid() {
		return nil, fmt.Errorf("constructor (%s) on %s has no bound function", strings.Join(c.params, ", "), c.owner)
	}
	if len(args) != c.fn.Type().NumIn() {
		return nil, fmt.Errorf("constructor on %s takes %d arguments, got %d", c.owner, c.fn.Type().NumIn(), len(args))
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("invoking constructor on %s: %v", c.owner, r)
		}
	}()

	in := make([]reflect.Value, len(args))
	ft := c.fn.Type()
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(ft.In(i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}

	results := c.fn.Call(in)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface(), nil
}
