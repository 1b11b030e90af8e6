package typo

// InstanceBuilder accumulates ordered (parameter type, value) pairs and
// performs exact-signature constructor lookup and invocation on a target
// type. No coercion, no widening, no subtype matching: only a
// constructor whose ordered formal parameter types exactly equal the
// accumulated sequence is attempted.
//
// A builder is a single-writer, sequential-use accumulator; it is not
// safe for concurrent AddArgument calls. Repeated Build calls re-run the
// same lookup against the same accumulated state.
type InstanceBuilder struct {
	target RawType
	types  []RawType
	values []any
}

// NewInstance starts a builder for the target type.
func NewInstance(target RawType) *InstanceBuilder {
	return &InstanceBuilder{target: target}
}

// AddArgument appends one (parameter type, value) pair and returns the
// builder for chaining. The value is not checked against the type here;
// an incompatible value surfaces as an invocation failure in Build.
func (b *InstanceBuilder) AddArgument(paramType RawType, value any) *InstanceBuilder {
	b.types = append(b.types, paramType)
	b.values = append(b.values, value)
	return b
}

// Build looks up a constructor on the target type whose ordered formal
// parameter types exactly equal the accumulated type sequence, and
// invokes it with the accumulated values in order.
//
// Failures are distinguishable: *NoConstructorError when no signature
// matches, *InaccessibleConstructorError when the match may not be
// invoked, and *InvocationError wrapping any failure raised by the
// invocation itself.
func (b *InstanceBuilder) Build() (any, error) {
	want := make([]string, len(b.types))
	for i, t := range b.types {
		want[i] = t.QualifiedName()
	}

	ctor, found := matchConstructor(b.target, want)
	if !found {
		err := &NoConstructorError{Target: b.target.QualifiedName(), Params: want}
		diagf("typo: %v", err)
		return nil, err
	}
	if !ctor.Accessible() {
		err := &InaccessibleConstructorError{Target: b.target.QualifiedName(), Params: want}
		diagf("typo: %v", err)
		return nil, err
	}

	values := append([]any(nil), b.values...)
	out, err := ctor.Invoke(values)
	if err != nil {
		wrapped := &InvocationError{Target: b.target.QualifiedName(), Err: err}
		diagf("typo: %v", wrapped)
		return nil, wrapped
	}
	return out, nil
}

func matchConstructor(target RawType, want []string) (Constructor, bool) {
	for _, c := range target.Constructors() {
		if paramsEqual(c.ParameterTypes(), want) {
			return c, true
		}
	}
	return nil, false
}

func paramsEqual(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
