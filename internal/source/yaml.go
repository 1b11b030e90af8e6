// Package source populates a registry from external type metadata.
//
// Four loaders are provided:
//   - YAML declaration files (typo.yaml)
//   - Go packages, scanned via go/packages
//   - Protobuf descriptor files, parsed from .proto sources
//   - Remote gRPC servers, via the server reflection service
//
// Loaders validate before registering; a declaration that fails
// validation registers nothing.
package source

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/typo/pkg/registry"
)

// Config is the top-level typo.yaml declaration file.
type Config struct {
	// Types lists the type declarations, in registration order.
	// Supertypes come before the types that reference them.
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl is one declaration in a typo.yaml file. References use
// source notation: "demo.Container<demo.Widget>", "Comparable<T>", "?".
// A bare name matching one of the declaring type's type_params is read
// as a type variable.
type TypeDecl struct {
	Name         string     `yaml:"name"`
	TypeParams   []string   `yaml:"type_params,omitempty"`
	Interface    bool       `yaml:"interface,omitempty"`
	Abstract     bool       `yaml:"abstract,omitempty"`
	Extends      string     `yaml:"extends,omitempty"`
	Implements   []string   `yaml:"implements,omitempty"`
	Constructors []CtorDecl `yaml:"constructors,omitempty"`
}

// CtorDecl is one constructor declaration: an ordered list of formal
// parameter type names. YAML-declared constructors are metadata only.
type CtorDecl struct {
	Params []string `yaml:"params"`
}

// LoadConfig reads and validates a typo.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks structural requirements the YAML schema cannot express.
func (c *Config) Validate() error {
	if len(c.Types) == 0 {
		return fmt.Errorf("config declares no types")
	}
	seen := make(map[string]bool)
	for i, t := range c.Types {
		if t.Name == "" {
			return fmt.Errorf("types[%d]: missing name", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("types[%d]: duplicate declaration of %s", i, t.Name)
		}
		seen[t.Name] = true
		if t.Extends != "" && t.Interface {
			return fmt.Errorf("types[%d]: interface %s cannot use extends", i, t.Name)
		}
		for j, c := range t.Constructors {
			if len(c.Params) == 0 {
				return fmt.Errorf("types[%d]: constructor %d of %s has no params", i, j, t.Name)
			}
		}
	}
	return nil
}

// Apply registers every declaration of the config, in order.
func (c *Config) Apply(reg *registry.Registry) error {
	for _, t := range c.Types {
		d := registry.Decl{
			Name:       t.Name,
			TypeParams: append([]string(nil), t.TypeParams...),
			Interface:  t.Interface,
			// Interfaces are abstract in nature.
			Abstract: t.Abstract || t.Interface,
		}
		if t.Extends != "" {
			ref, err := ParseRef(t.Extends, t.TypeParams)
			if err != nil {
				return fmt.Errorf("type %s: extends: %w", t.Name, err)
			}
			d.Extends = &ref
		}
		for _, is := range t.Implements {
			ref, err := ParseRef(is, t.TypeParams)
			if err != nil {
				return fmt.Errorf("type %s: implements: %w", t.Name, err)
			}
			d.Implements = append(d.Implements, ref)
		}
		for _, cd := range t.Constructors {
			d.Constructors = append(d.Constructors, registry.CtorDecl{
				Params: append([]string(nil), cd.Params...),
			})
		}
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// ParseRef parses a type reference in source notation. typeParams names
// the type variables in scope: a bare matching name parses as a
// variable reference rather than a named type.
func ParseRef(s string, typeParams []string) (registry.Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return registry.Ref{}, fmt.Errorf("empty type reference")
	}
	if s == "?" {
		return registry.Wildcard(), nil
	}

	lt := strings.IndexByte(s, '<')
	if lt < 0 {
		for _, p := range typeParams {
			if s == p {
				return registry.Variable(s), nil
			}
		}
		return registry.Named(s), nil
	}

	if !strings.HasSuffix(s, ">") {
		return registry.Ref{}, fmt.Errorf("unbalanced type reference %q", s)
	}
	raw := strings.TrimSpace(s[:lt])
	if raw == "" {
		return registry.Ref{}, fmt.Errorf("missing raw type in %q", s)
	}
	inner := s[lt+1 : len(s)-1]
	parts, err := splitArgs(inner)
	if err != nil {
		return registry.Ref{}, fmt.Errorf("in %q: %w", s, err)
	}
	if len(parts) == 0 {
		return registry.Ref{}, fmt.Errorf("parameterized reference %q has no type arguments", s)
	}

	args := make([]registry.Ref, len(parts))
	for i, p := range parts {
		arg, err := ParseRef(p, typeParams)
		if err != nil {
			return registry.Ref{}, err
		}
		args[i] = arg
	}
	return registry.Generic(raw, args...), nil
}

// splitArgs splits on commas at angle-bracket depth zero.
func splitArgs(s string) ([]string, error) {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced angle brackets")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced angle brackets")
	}
	if strings.TrimSpace(s[start:]) == "" && len(parts) == 0 {
		return nil, nil
	}
	parts = append(parts, s[start:])
	return parts, nil
}
