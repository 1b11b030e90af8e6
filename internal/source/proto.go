package source

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"

	"github.com/funvibe/typo/pkg/registry"
)

// LoadProtoFiles parses .proto files and registers the types they
// declare. importPaths seeds the parser's include resolution; when
// empty, filenames are resolved relative to the working directory.
func LoadProtoFiles(filenames, importPaths []string, reg *registry.Registry) error {
	parser := protoparse.Parser{
		ImportPaths:           importPaths,
		IncludeSourceCodeInfo: false,
	}
	fds, err := parser.ParseFiles(filenames...)
	if err != nil {
		return fmt.Errorf("parsing proto files: %w", err)
	}
	for _, fd := range fds {
		if err := RegisterFileDescriptor(fd, reg); err != nil {
			return err
		}
	}
	return nil
}

// RegisterFileDescriptor registers every type a file descriptor
// declares: message types as concrete raw types, enum types as concrete
// raw types, service types with the interface trait. Types already
// registered are skipped, so overlapping descriptor sets compose.
func RegisterFileDescriptor(fd *desc.FileDescriptor, reg *registry.Registry) error {
	for _, md := range fd.GetMessageTypes() {
		if err := registerMessage(md, reg); err != nil {
			return err
		}
	}
	for _, ed := range fd.GetEnumTypes() {
		if err := registerOnce(reg, registry.Decl{Name: ed.GetFullyQualifiedName()}); err != nil {
			return err
		}
	}
	for _, sd := range fd.GetServices() {
		d := registry.Decl{
			Name:      sd.GetFullyQualifiedName(),
			Interface: true,
			Abstract:  true,
		}
		if err := registerOnce(reg, d); err != nil {
			return err
		}
	}
	return nil
}

func registerMessage(md *desc.MessageDescriptor, reg *registry.Registry) error {
	// Synthetic map-entry messages are compiler artifacts, not types.
	if md.GetMessageOptions().GetMapEntry() {
		return nil
	}
	if err := registerOnce(reg, registry.Decl{Name: md.GetFullyQualifiedName()}); err != nil {
		return err
	}
	for _, nested := range md.GetNestedMessageTypes() {
		if err := registerMessage(nested, reg); err != nil {
			return err
		}
	}
	for _, ed := range md.GetNestedEnumTypes() {
		if err := registerOnce(reg, registry.Decl{Name: ed.GetFullyQualifiedName()}); err != nil {
			return err
		}
	}
	return nil
}

func registerOnce(reg *registry.Registry, d registry.Decl) error {
	if _, ok := reg.Lookup(d.Name); ok {
		return nil
	}
	return reg.Register(d)
}
