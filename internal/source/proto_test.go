package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jhump/protoreflect/desc/protoparse"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/funvibe/typo/pkg/registry"
)

const demoProto = `
syntax = "proto3";

package demo;

message Widget {
  string name = 1;
  Status status = 2;
  map<string, string> labels = 3;

  message Settings {
    int32 weight = 1;
  }

  enum Status {
    UNKNOWN = 0;
    ACTIVE = 1;
  }
}

enum Color {
  RED = 0;
  BLUE = 1;
}

service Inventory {
  rpc GetWidget(Widget) returns (Widget);
}
`

func parseDemoProto(t *testing.T) *registry.Registry {
	t.Helper()
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			"demo.proto": demoProto,
		}),
	}
	fds, err := parser.ParseFiles("demo.proto")
	if err != nil {
		t.Fatalf("parsing demo.proto: %v", err)
	}

	reg := registry.New()
	for _, fd := range fds {
		if err := RegisterFileDescriptor(fd, reg); err != nil {
			t.Fatalf("registering descriptors: %v", err)
		}
	}
	return reg
}

func TestRegisterFileDescriptor(t *testing.T) {
	reg := parseDemoProto(t)

	for _, name := range []string{
		"demo.Widget",
		"demo.Widget.Settings",
		"demo.Widget.Status",
		"demo.Color",
	} {
		rt, ok := reg.Lookup(name)
		if !ok {
			t.Errorf("%s not registered", name)
			continue
		}
		if rt.IsInterface() || rt.IsAbstract() {
			t.Errorf("%s registered with non-concrete traits", name)
		}
	}

	svc, ok := reg.Lookup("demo.Inventory")
	if !ok {
		t.Fatal("service demo.Inventory not registered")
	}
	if !svc.IsInterface() || !svc.IsAbstract() {
		t.Errorf("service traits: interface=%v abstract=%v", svc.IsInterface(), svc.IsAbstract())
	}
}

func TestRegisterFileDescriptorSkipsMapEntries(t *testing.T) {
	reg := parseDemoProto(t)

	// The labels field compiles to a synthetic LabelsEntry message;
	// it is an artifact, not a type.
	if _, ok := reg.Lookup("demo.Widget.LabelsEntry"); ok {
		t.Errorf("synthetic map-entry message was registered")
	}
}

func TestLoadDescriptorSet(t *testing.T) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			"demo.proto": demoProto,
		}),
	}
	fds, err := parser.ParseFiles("demo.proto")
	if err != nil {
		t.Fatal(err)
	}

	set := &descriptorpb.FileDescriptorSet{}
	for _, fd := range fds {
		set.File = append(set.File, fd.AsFileDescriptorProto())
	}
	data, err := proto.Marshal(set)
	if err != nil {
		t.Fatalf("marshaling descriptor set: %v", err)
	}
	path := filepath.Join(t.TempDir(), "demo.binpb")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	reg := registry.New()
	if err := LoadDescriptorSet(path, reg); err != nil {
		t.Fatalf("LoadDescriptorSet: %v", err)
	}
	for _, name := range []string{"demo.Widget", "demo.Color", "demo.Inventory"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("%s not registered from descriptor set", name)
		}
	}
}

func TestLoadDescriptorSetRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.binpb")
	if err := os.WriteFile(path, []byte("not a descriptor set"), 0o600); err != nil {
		t.Fatal(err)
	}
	reg := registry.New()
	if err := LoadDescriptorSet(path, reg); err == nil {
		t.Fatal("expected an error for a malformed descriptor set")
	}
}

func TestRegisterFileDescriptorIdempotent(t *testing.T) {
	reg := parseDemoProto(t)
	before := reg.Count()

	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			"demo.proto": demoProto,
		}),
	}
	fds, err := parser.ParseFiles("demo.proto")
	if err != nil {
		t.Fatal(err)
	}
	// Re-registering the same file skips existing names instead of
	// failing, so overlapping descriptor sets compose.
	for _, fd := range fds {
		if err := RegisterFileDescriptor(fd, reg); err != nil {
			t.Fatalf("second registration: %v", err)
		}
	}
	if reg.Count() != before {
		t.Errorf("Count() = %d after re-registration, want %d", reg.Count(), before)
	}
}
