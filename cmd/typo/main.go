package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/funvibe/typo/internal/source"
	"github.com/funvibe/typo/pkg/registry"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "help", "-help", "--help":
		printUsage()
		return
	case "inspect":
		err = handleInspect(os.Args[2:])
	case "scan":
		err = handleScan(os.Args[2:])
	case "proto":
		err = handleProto(os.Args[2:])
	case "remote":
		err = handleRemote(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "typo: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: typo <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  inspect <typo.yaml> <qualified-name>   Introspect a type declared in a YAML file")
	fmt.Println("  scan <go-package> [qualified-name]     Scan a Go package; report one type or list all")
	fmt.Println("  proto <file.proto|set.binpb...> [-- name]  Register protobuf declarations; report or list")
	fmt.Println("  remote <addr> [qualified-name]         Fetch types via gRPC server reflection")
}

func handleInspect(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: typo inspect <typo.yaml> <qualified-name>")
	}
	cfg, err := source.LoadConfig(args[0])
	if err != nil {
		return err
	}
	reg := registry.New()
	if err := cfg.Apply(reg); err != nil {
		return err
	}
	return report(reg, args[1])
}

func handleScan(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: typo scan <go-package> [qualified-name]")
	}
	reg := registry.New()
	if err := source.ScanPackage(args[0], reg); err != nil {
		return err
	}
	if len(args) == 2 {
		return report(reg, args[1])
	}
	listTypes(reg)
	return nil
}

func handleProto(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: typo proto <file.proto|set.binpb...> [-- qualified-name]")
	}
	files := args
	name := ""
	for i, a := range args {
		if a == "--" {
			if i+2 != len(args) {
				return fmt.Errorf("usage: typo proto <file.proto|set.binpb...> [-- qualified-name]")
			}
			files, name = args[:i], args[i+1]
			break
		}
	}
	reg := registry.New()
	var protoFiles []string
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".binpb") || strings.HasSuffix(f, ".pb"):
			if err := source.LoadDescriptorSet(f, reg); err != nil {
				return err
			}
		default:
			protoFiles = append(protoFiles, f)
		}
	}
	if len(protoFiles) > 0 {
		if err := source.LoadProtoFiles(protoFiles, nil, reg); err != nil {
			return err
		}
	}
	if name != "" {
		return report(reg, name)
	}
	listTypes(reg)
	return nil
}

func handleRemote(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: typo remote <addr> [qualified-name]")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	reg := registry.New()
	if err := source.LoadRemote(ctx, args[0], reg); err != nil {
		return err
	}
	if len(args) == 2 {
		return report(reg, args[1])
	}
	listTypes(reg)
	return nil
}
