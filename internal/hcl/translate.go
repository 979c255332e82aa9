// This file contains the logic for translating HCL schema structs into the
// format-agnostic model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/cleago/internal/config"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/schema"
)

// blockRef identifies a nested command or group block in source order.
type blockRef struct {
	kind   string
	name   string
	source string
}

// blockOrder lists the command and group blocks of body in source order. It
// returns nil when body is not native syntax.
func blockOrder(body hcl.Body) []blockRef {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}
	var refs []blockRef
	for _, b := range sb.Blocks {
		if (b.Type != "command" && b.Type != "group") || len(b.Labels) != 1 {
			continue
		}
		refs = append(refs, blockRef{
			kind:   b.Type,
			name:   b.Labels[0],
			source: fmt.Sprintf("%s:%d", b.TypeRange.Filename, b.TypeRange.Start.Line),
		})
	}
	return refs
}

// nestedBlocks is what may still be left in a remain body once gohcl has
// taken the attributes and blocks it knows about.
var nestedBlocks = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "command", LabelNames: []string{"name"}},
		{Type: "group", LabelNames: []string{"name"}},
	},
}

// checkRemain rejects anything in body that the schema did not decode, such
// as a misspelled attribute.
func checkRemain(body hcl.Body) error {
	if body == nil {
		return nil
	}
	if _, diags := body.Content(nestedBlocks); diags.HasErrors() {
		return diags
	}
	return nil
}

// orderChildren merges separately decoded commands and groups back into
// declaration order.
func orderChildren(body hcl.Body, commands, groups []*config.CommandDefinition) []*config.CommandDefinition {
	refs := blockOrder(body)
	if refs == nil {
		return append(commands, groups...)
	}

	// Duplicate names are kept; the builder lets the last one win.
	var ci, gi int
	out := make([]*config.CommandDefinition, 0, len(commands)+len(groups))
	for _, ref := range refs {
		switch {
		case ref.kind == "command" && ci < len(commands):
			commands[ci].Source = ref.source
			out = append(out, commands[ci])
			ci++
		case ref.kind == "group" && gi < len(groups):
			groups[gi].Source = ref.source
			out = append(out, groups[gi])
			gi++
		}
	}
	return out
}

func (l *Loader) translateFile(ctx context.Context, f *schema.File) ([]*config.CommandDefinition, error) {
	if err := checkRemain(f.Remain); err != nil {
		return nil, err
	}
	commands := make([]*config.CommandDefinition, 0, len(f.Commands))
	for _, c := range f.Commands {
		def, err := translateCommand(ctx, c)
		if err != nil {
			return nil, err
		}
		commands = append(commands, def)
	}
	groups := make([]*config.CommandDefinition, 0, len(f.Groups))
	for _, g := range f.Groups {
		def, err := translateGroup(ctx, g)
		if err != nil {
			return nil, err
		}
		groups = append(groups, def)
	}
	return orderChildren(f.Remain, commands, groups), nil
}

func translateCommand(ctx context.Context, c *schema.Command) (*config.CommandDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("command", c.Name)
	logger.Debug("Translating HCL command to internal config model.")

	params, err := translateParams(ctxlog.WithLogger(ctx, logger), c.Name, c.Params)
	if err != nil {
		return nil, err
	}
	return &config.CommandDefinition{
		Name:    c.Name,
		Doc:     c.Doc,
		Version: c.Version,
		OnRun:   c.OnRun,
		Context: c.Context,
		Params:  params,
	}, nil
}

func translateGroup(ctx context.Context, g *schema.Group) (*config.CommandDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("group", g.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL group to internal config model.", "commands", len(g.Commands), "groups", len(g.Groups))

	if err := checkRemain(g.Remain); err != nil {
		return nil, fmt.Errorf("in group %q: %w", g.Name, err)
	}

	params, err := translateParams(ctx, g.Name, g.Params)
	if err != nil {
		return nil, err
	}

	commands := make([]*config.CommandDefinition, 0, len(g.Commands))
	for _, c := range g.Commands {
		def, err := translateCommand(ctx, c)
		if err != nil {
			return nil, err
		}
		commands = append(commands, def)
	}
	groups := make([]*config.CommandDefinition, 0, len(g.Groups))
	for _, child := range g.Groups {
		def, err := translateGroup(ctx, child)
		if err != nil {
			return nil, err
		}
		groups = append(groups, def)
	}

	return &config.CommandDefinition{
		Name:            g.Name,
		Doc:             g.Doc,
		Version:         g.Version,
		OnRun:           g.OnRun,
		Context:         g.Context,
		AllowDirectExec: g.AllowDirectExec,
		IsGroup:         true,
		Params:          params,
		Children:        orderChildren(g.Remain, commands, groups),
	}, nil
}

func translateParams(ctx context.Context, owner string, in []*schema.Param) ([]*config.ParamDefinition, error) {
	out := make([]*config.ParamDefinition, 0, len(in))
	for _, p := range in {
		def, err := translateParam(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("in %q, param %q: %w", owner, p.Name, err)
		}
		out = append(out, def)
	}
	return out, nil
}

// translateParam processes a single param block, handling its type keyword
// and default value.
func translateParam(ctx context.Context, p *schema.Param) (*config.ParamDefinition, error) {
	keyword, err := typeKeyword(ctx, p.Type)
	if err != nil {
		return nil, err
	}

	var defaultVal *cty.Value
	if isExprDefined(ctx, p.Default, "default") {
		val, diags := p.Default.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid default value: %w", diags)
		}
		if !val.IsNull() {
			defaultVal = &val
		}
	}

	return &config.ParamDefinition{
		Name:    p.Name,
		Type:    keyword,
		Short:   p.Short,
		Long:    p.Long,
		Default: defaultVal,
		Help:    p.Help,
		Env:     p.Env,
		Choices: p.Choices,
		Exists:  p.Exists,
		Resolve: p.Resolve,
	}, nil
}

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional fields with zero-width
// placeholder expressions, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}
