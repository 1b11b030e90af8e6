package source

import (
	"context"
	"fmt"

	"github.com/jhump/protoreflect/grpcreflect"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/funvibe/typo/pkg/registry"
)

// LoadRemote dials a reflection-enabled gRPC server and registers the
// message, enum and service types it advertises. The connection is
// plaintext; this is a development and tooling path, not a transport
// for the introspection core.
func LoadRemote(ctx context.Context, addr string, reg *registry.Registry) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}
	defer conn.Close()

	client := grpcreflect.NewClientAuto(ctx, conn)
	defer client.Reset()

	services, err := client.ListServices()
	if err != nil {
		return fmt.Errorf("listing services on %s: %w", addr, err)
	}

	seen := make(map[string]bool)
	for _, svc := range services {
		sd, err := client.ResolveService(svc)
		if err != nil {
			return fmt.Errorf("resolving service %s: %w", svc, err)
		}
		fd := sd.GetFile()
		if seen[fd.GetName()] {
			continue
		}
		seen[fd.GetName()] = true
		if err := RegisterFileDescriptor(fd, reg); err != nil {
			return err
		}
	}
	return nil
}
