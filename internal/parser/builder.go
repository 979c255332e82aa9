package parser

import "github.com/specialistvlad/cleago/internal/param"

// Binding declares one parameter for Build.
type Binding struct {
	Name  string
	Param param.Parameter
	// Default, when non-nil, replaces the descriptor's own default before
	// registration, which can turn a positional into a flag.
	Default any
}

// Build names each descriptor, applies default overrides, and registers them
// in order.
func Build(variant Variant, bindings ...Binding) *Parser {
	p := New(variant)
	for _, b := range bindings {
		if b.Default != nil {
			b.Param.SetDefault(b.Default)
		}
		b.Param.SetName(b.Name)
		p.Add(b.Param)
	}
	return p
}
