package typo

// TypeArgumentList is an ordered sequence of descriptors, one per actual
// type argument of a parameterized reference. Never empty by
// construction; order matches the declaration order of the arguments.
type TypeArgumentList struct {
	items []*Descriptor
}

// NewTypeArgumentList builds a list from at least one descriptor. A
// zero-length input fails with *EmptyArgumentListError.
func NewTypeArgumentList(items []*Descriptor) (*TypeArgumentList, error) {
	if len(items) == 0 {
		return nil, &EmptyArgumentListError{}
	}
	copied := make([]*Descriptor, len(items))
	copy(copied, items)
	return &TypeArgumentList{items: copied}, nil
}

// Len returns the number of type arguments.
func (l *TypeArgumentList) Len() int {
	return len(l.items)
}

// At returns the descriptor at position i.
func (l *TypeArgumentList) At(i int) *Descriptor {
	return l.items[i]
}

// First returns the descriptor at position 0. The empty-list guard is
// defensive: construction already forbids empty lists.
func (l *TypeArgumentList) First() (*Descriptor, error) {
	if len(l.items) == 0 {
		return nil, &ListAccessError{Op: "first"}
	}
	return l.items[0], nil
}

// Last returns the descriptor at the final position.
func (l *TypeArgumentList) Last() (*Descriptor, error) {
	if len(l.items) == 0 {
		return nil, &ListAccessError{Op: "last"}
	}
	return l.items[len(l.items)-1], nil
}
