package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified representation of all loaded manifests.
type Model struct {
	Root *CommandDefinition
}

// CommandDefinition is a `command` or `group` block.
type CommandDefinition struct {
	Name            string
	Doc             string
	Version         string
	OnRun           string
	Context         string
	AllowDirectExec bool
	IsGroup         bool
	Params          []*ParamDefinition
	// Children is empty for commands and in declaration order for groups.
	Children []*CommandDefinition
	// Source is the `file:line` of the block, for error messages.
	Source string
}

// ParamDefinition is a `param` block.
type ParamDefinition struct {
	Name string
	// Type is the type keyword as written, with `list(string)` reduced to
	// `list`.
	Type    string
	Short   string
	Long    string
	Default *cty.Value
	Help    string
	Env     string
	Choices []string
	Exists  bool
	Resolve bool
}

// Walk calls fn for def and every descendant, parents first. path holds the
// names from the root down to the visited definition.
func (def *CommandDefinition) Walk(fn func(path []string, d *CommandDefinition)) {
	def.walk(nil, fn)
}

func (def *CommandDefinition) walk(prefix []string, fn func([]string, *CommandDefinition)) {
	path := append(append([]string(nil), prefix...), def.Name)
	fn(path, def)
	for _, child := range def.Children {
		child.walk(path, fn)
	}
}
