package typo

// GenericDescriptor is a Descriptor guaranteed to wrap a parameterized
// reference, and so able to expose the reference's actual type arguments.
type GenericDescriptor struct {
	Descriptor
}

// NewGenericDescriptor builds a GenericDescriptor from a parameterized
// reference. A reference of any other kind fails with
// *InvalidDescriptorError, including a parameterized reference with zero
// type arguments, which must never be represented as a generic
// descriptor.
func NewGenericDescriptor(reg Registry, ref TypeRef) (*GenericDescriptor, error) {
	pr, ok := ref.(ParameterizedRef)
	if !ok || len(pr.Args) == 0 {
		return nil, &InvalidDescriptorError{Ref: ref}
	}
	d, err := Describe(reg, pr)
	if err != nil {
		return nil, err
	}
	return &GenericDescriptor{Descriptor: *d}, nil
}

// DeclaredTypeArguments classifies each actual type argument of the
// wrapped reference, in declaration order. All-or-nothing: if any
// argument is itself an unsupported reference kind the whole call fails,
// since a partial list would mislead a caller expecting full argument
// fidelity.
func (g *GenericDescriptor) DeclaredTypeArguments() (*TypeArgumentList, error) {
	args := make([]*Descriptor, 0, len(g.param.Args))
	for _, ref := range g.param.Args {
		d, err := Describe(g.reg, ref)
		if err != nil {
			return nil, err
		}
		args = append(args, d)
	}
	return NewTypeArgumentList(args)
}
