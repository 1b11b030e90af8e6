package typo

import (
	"errors"
	"strings"
	"testing"
)

func TestComputeFlags(t *testing.T) {
	tests := []struct {
		name string
		typ  *fakeType
		want Flags
	}{
		{
			name: "plain concrete type",
			typ:  &fakeType{name: "demo.Widget"},
			want: 0,
		},
		{
			name: "generic concrete type",
			typ:  &fakeType{name: "demo.Container", params: 1},
			want: FlagGeneric,
		},
		{
			name: "generic abstract interface",
			typ:  &fakeType{name: "demo.Comparable", params: 1, iface: true, abstract: true},
			want: FlagGeneric | FlagInterface | FlagAbstract,
		},
		{
			name: "abstract class",
			typ:  &fakeType{name: "demo.Base", abstract: true},
			want: FlagAbstract,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeFlags(tt.typ); got != tt.want {
				t.Errorf("ComputeFlags() = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestDescribeRaw(t *testing.T) {
	reg := newFakeRegistry()
	widget := reg.add(&fakeType{name: "demo.Widget"})

	d, err := Describe(reg, RawRef{Type: widget})
	if err != nil {
		t.Fatalf("Describe raw ref: %v", err)
	}
	if d.IsParameterized() {
		t.Errorf("raw descriptor reports parameterized")
	}
	if d.IsGeneric() {
		t.Errorf("type with zero type parameters reports generic")
	}
	if d.String() != "demo.Widget" {
		t.Errorf("String() = %q, want demo.Widget", d.String())
	}

	rt, ok := d.ResolveRawType()
	if !ok || rt != RawType(widget) {
		t.Errorf("ResolveRawType() = %v, %v, want the wrapped type", rt, ok)
	}
}

func TestDescribeParameterized(t *testing.T) {
	reg := newFakeRegistry()
	container := reg.add(&fakeType{name: "demo.Container", params: 1, abstract: true})
	widget := reg.add(&fakeType{name: "demo.Widget"})

	ref := ParameterizedRef{Raw: "demo.Container", Args: []TypeRef{RawRef{Type: widget}}}
	d, err := Describe(reg, ref)
	if err != nil {
		t.Fatalf("Describe parameterized ref: %v", err)
	}
	if !d.IsParameterized() {
		t.Errorf("parameterized descriptor reports raw")
	}
	if !d.IsGeneric() || !d.IsAbstract() {
		t.Errorf("flags = %b, want generic|abstract", d.Flags())
	}
	if d.String() != "demo.Container<demo.Widget>" {
		t.Errorf("String() = %q", d.String())
	}
	rt, ok := d.ResolveRawType()
	if !ok || rt != RawType(container) {
		t.Errorf("ResolveRawType() = %v, %v, want demo.Container", rt, ok)
	}
}

func TestDescribeParameterizedUnresolvedRaw(t *testing.T) {
	reg := newFakeRegistry()

	var logged []string
	OnDiagnostic = func(format string, args ...any) {
		logged = append(logged, format)
	}
	defer func() { OnDiagnostic = nil }()

	ref := ParameterizedRef{Raw: "demo.Erased", Args: []TypeRef{VariableRef{Name: "T"}}}
	d, err := Describe(reg, ref)
	if err != nil {
		t.Fatalf("unresolved raw component must not fail classification: %v", err)
	}
	if d.Flags() != 0 {
		t.Errorf("flags = %b, want all-false on unresolved raw component", d.Flags())
	}
	if _, ok := d.ResolveRawType(); ok {
		t.Errorf("ResolveRawType() resolved an unregistered name")
	}
	if len(logged) != 1 {
		t.Errorf("diagnostic sink notified %d times, want 1", len(logged))
	}
}

func TestDescribeRejectsUnsupportedRefs(t *testing.T) {
	reg := newFakeRegistry()

	tests := []struct {
		name string
		ref  TypeRef
	}{
		{name: "type variable", ref: VariableRef{Name: "T"}},
		{name: "wildcard", ref: WildcardRef{}},
		{name: "nil raw type", ref: RawRef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Describe(reg, tt.ref)
			var ure *UnsupportedRefError
			if !errors.As(err, &ure) {
				t.Fatalf("Describe(%s) error = %v, want *UnsupportedRefError", tt.ref, err)
			}
			if !strings.Contains(ure.Error(), tt.ref.String()) {
				t.Errorf("error %q does not mention the reference", ure.Error())
			}
		})
	}
}

func TestMatches(t *testing.T) {
	reg := newFakeRegistry()
	widget := reg.add(&fakeType{name: "demo.Widget"})
	other := &fakeType{name: "demo.Other"}

	raw, err := Describe(reg, RawRef{Type: widget})
	if err != nil {
		t.Fatal(err)
	}
	if !raw.Matches(widget) {
		t.Errorf("raw descriptor does not match its own type")
	}
	if raw.Matches(other) {
		t.Errorf("raw descriptor matches an unrelated type")
	}
	if raw.Matches(nil) {
		t.Errorf("descriptor matches nil target")
	}

	// Parameterized matching compares raw component names only; the
	// type arguments never participate.
	param, err := Describe(reg, ParameterizedRef{
		Raw:  "demo.Widget",
		Args: []TypeRef{RawRef{Type: other}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !param.Matches(widget) {
		t.Errorf("parameterized descriptor does not match its raw component type")
	}
	if param.Matches(other) {
		t.Errorf("parameterized descriptor matched on a type argument")
	}
}

// valueType is a RawType carried by value with a slice field, so its
// interface values are not comparable with ==.
type valueType struct {
	name    string
	aliases []string
}

func (v valueType) QualifiedName() string       { return v.name }
func (v valueType) TypeParamCount() int         { return 0 }
func (v valueType) IsInterface() bool           { return false }
func (v valueType) IsAbstract() bool            { return false }
func (v valueType) Superclass() TypeRef         { return nil }
func (v valueType) Interfaces() []TypeRef       { return nil }
func (v valueType) Constructors() []Constructor { return nil }

func TestMatchesUncomparableRawType(t *testing.T) {
	reg := newFakeRegistry()
	vt := valueType{name: "demo.Widget", aliases: []string{"widget"}}

	d, err := Describe(reg, RawRef{Type: vt})
	if err != nil {
		t.Fatal(err)
	}
	if !d.Matches(valueType{name: "demo.Widget", aliases: []string{"w"}}) {
		t.Errorf("raw descriptor does not match an equally named value-carried type")
	}
	if d.Matches(valueType{name: "demo.Other"}) {
		t.Errorf("raw descriptor matches an unrelated value-carried type")
	}
}

func TestIsAbstractClass(t *testing.T) {
	tests := []struct {
		name     string
		iface    bool
		abstract bool
		want     bool
	}{
		{name: "concrete class", iface: false, abstract: false, want: false},
		{name: "abstract class", iface: false, abstract: true, want: true},
		{name: "plain interface", iface: true, abstract: false, want: false},
		{name: "abstract interface", iface: true, abstract: true, want: false},
	}

	reg := newFakeRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeType{name: "demo.T", iface: tt.iface, abstract: tt.abstract}
			d, err := Describe(reg, RawRef{Type: ft})
			if err != nil {
				t.Fatal(err)
			}
			if got := d.IsAbstractClass(); got != tt.want {
				t.Errorf("IsAbstractClass() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDescriptorStringNested(t *testing.T) {
	reg := newFakeRegistry()
	widget := reg.add(&fakeType{name: "demo.Widget"})

	ref := ParameterizedRef{
		Raw: "demo.Pair",
		Args: []TypeRef{
			RawRef{Type: widget},
			ParameterizedRef{Raw: "demo.List", Args: []TypeRef{RawRef{Type: widget}}},
		},
	}
	d, err := Describe(reg, ref)
	if err != nil {
		t.Fatal(err)
	}
	want := "demo.Pair<demo.Widget, demo.List<demo.Widget>>"
	if d.String() != want {
		t.Errorf("String() = %q, want %q", d.String(), want)
	}
}
