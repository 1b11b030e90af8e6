package source

import (
	"fmt"
	"os"

	"github.com/jhump/protoreflect/desc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/funvibe/typo/pkg/registry"
)

// LoadDescriptorSet registers the types of a compiled descriptor set
// (protoc --descriptor_set_out). Useful when .proto sources are not
// shipped alongside the binary.
func LoadDescriptorSet(path string, reg *registry.Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("parsing descriptor set %s: %w", path, err)
	}

	fds, err := desc.CreateFileDescriptorsFromSet(&set)
	if err != nil {
		return fmt.Errorf("resolving descriptor set %s: %w", path, err)
	}
	for _, fd := range fds {
		if err := RegisterFileDescriptor(fd, reg); err != nil {
			return err
		}
	}
	return nil
}
