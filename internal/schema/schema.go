// Package schema holds the gohcl decoding targets for manifest files.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Param is a `param` block. Type is a keyword expression such as `integer`
// or `list(string)`.
type Param struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type"`
	Short   string         `hcl:"short,optional"`
	Long    string         `hcl:"long,optional"`
	Default hcl.Expression `hcl:"default,optional"`
	Help    string         `hcl:"help,optional"`
	Env     string         `hcl:"env,optional"`
	Choices []string       `hcl:"choices,optional"`
	Exists  bool           `hcl:"exists,optional"`
	Resolve bool           `hcl:"resolve,optional"`
}

// Command is a leaf `command` block.
type Command struct {
	Name    string   `hcl:"name,label"`
	Doc     string   `hcl:"doc,optional"`
	Version string   `hcl:"version,optional"`
	OnRun   string   `hcl:"on_run,optional"`
	Context string   `hcl:"context,optional"`
	Params  []*Param `hcl:"param,block"`
}

// Group is a `group` block. Nested commands and groups are decoded into
// separate slices; declaration order is recovered from the syntax tree that
// Remain still points at.
type Group struct {
	Name            string     `hcl:"name,label"`
	Doc             string     `hcl:"doc,optional"`
	Version         string     `hcl:"version,optional"`
	OnRun           string     `hcl:"on_run,optional"`
	Context         string     `hcl:"context,optional"`
	AllowDirectExec bool       `hcl:"allow_direct_exec,optional"`
	Params          []*Param   `hcl:"param,block"`
	Commands        []*Command `hcl:"command,block"`
	Groups          []*Group   `hcl:"group,block"`
	Remain          hcl.Body   `hcl:",remain"`
}

// File is the top level of a manifest file.
type File struct {
	Commands []*Command `hcl:"command,block"`
	Groups   []*Group   `hcl:"group,block"`
	Remain   hcl.Body   `hcl:",remain"`
}
