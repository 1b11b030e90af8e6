package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/typo/pkg/registry"
	"github.com/funvibe/typo/pkg/typo"
)

var useColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

const (
	colorCyan   = "36"
	colorYellow = "33"
	colorDim    = "2"
)

func paint(s, code string) string {
	if !useColor {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func listTypes(reg *registry.Registry) {
	names := reg.Names()
	fmt.Printf("%d registered types\n", len(names))
	for _, name := range names {
		fmt.Println("  " + paint(name, colorCyan))
	}
}

// report prints the introspection view of one registered type.
func report(reg *registry.Registry, name string) error {
	rt, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("type %s is not registered", name)
	}
	in := typo.New(reg, rt)

	fmt.Println(paint(name, colorCyan) + " " + paint(traitString(typo.ComputeFlags(rt)), colorDim))

	if sup, ok := in.Superclass(); ok {
		fmt.Println("  extends " + paint(sup.String(), colorYellow))
	}
	if g, ok := in.GenericSuperclass(); ok {
		printArguments("  ", g)
	}

	for _, d := range in.AllInterfaces() {
		fmt.Println("  implements " + paint(d.String(), colorYellow))
	}
	for _, g := range in.GenericInterfaces() {
		fmt.Println("  generic interface " + paint(g.String(), colorYellow))
		printArguments("    ", g)
	}

	for _, c := range rt.Constructors() {
		access := ""
		if !c.Accessible() {
			access = " " + paint("(not accessible)", colorDim)
		}
		fmt.Printf("  constructor (%s)%s\n", strings.Join(c.ParameterTypes(), ", "), access)
	}
	return nil
}

func printArguments(indent string, g *typo.GenericDescriptor) {
	list, err := g.DeclaredTypeArguments()
	if err != nil {
		fmt.Println(indent + paint("type arguments unavailable: "+err.Error(), colorDim))
		return
	}
	for i := 0; i < list.Len(); i++ {
		fmt.Println(indent + "argument " + paint(list.At(i).String(), colorCyan))
	}
}

func traitString(f typo.Flags) string {
	var traits []string
	if f.Has(typo.FlagGeneric) {
		traits = append(traits, "generic")
	}
	if f.Has(typo.FlagInterface) {
		traits = append(traits, "interface")
	} else if f.Has(typo.FlagAbstract) {
		traits = append(traits, "abstract")
	}
	if len(traits) == 0 {
		return "[concrete]"
	}
	return "[" + strings.Join(traits, " ") + "]"
}
