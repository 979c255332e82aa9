package builder

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/specialistvlad/cleago/internal/clictx"
	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/config"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Option configures Build.
type Option func(*builder)

// WithFs sets the filesystem file and directory parameters check paths
// against. The OS filesystem is used otherwise.
func WithFs(fs afero.Fs) Option {
	return func(b *builder) { b.fs = fs }
}

type builder struct {
	reg  *registry.Registry
	conv config.Converter
	fs   afero.Fs
}

// Build constructs the command tree rooted at model.Root.
func Build(ctx context.Context, model *config.Model, reg *registry.Registry, conv config.Converter, opts ...Option) (command.Executable, error) {
	logger := ctxlog.FromContext(ctx)
	if model == nil || model.Root == nil {
		return nil, fmt.Errorf("manifest has no root command")
	}
	b := &builder{reg: reg, conv: conv}
	for _, opt := range opts {
		opt(b)
	}

	store, err := b.rootContext(model.Root)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: starting command tree construction.", "root", model.Root.Name)

	root, err := b.build(ctx, model.Root, store)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: command tree ready.", "root", root.Name())
	return root, nil
}

func (b *builder) rootContext(def *config.CommandDefinition) (clictx.Store, error) {
	if def.Context == "" {
		return clictx.New(), nil
	}
	factory, ok := b.reg.Context(def.Context)
	if !ok {
		return nil, fmt.Errorf("command '%s': context '%s' is not registered", def.Name, def.Context)
	}
	return factory(), nil
}

func (b *builder) build(ctx context.Context, def *config.CommandDefinition, store clictx.Store) (command.Executable, error) {
	d, err := b.definition(ctx, def, store)
	if err != nil {
		return nil, err
	}
	if !def.IsGroup {
		return command.NewCommand(d), nil
	}

	group := command.NewGroup(d)
	for _, childDef := range def.Children {
		child, err := b.build(ctx, childDef, store)
		if err != nil {
			return nil, err
		}
		group.Add(child)
	}
	ctxlog.FromContext(ctx).Debug("Build: group assembled.", "group", def.Name, "children", len(def.Children))
	return group, nil
}

func (b *builder) definition(ctx context.Context, def *config.CommandDefinition, store clictx.Store) (command.Definition, error) {
	d := command.Definition{
		Name:            def.Name,
		Doc:             def.Doc,
		Version:         def.Version,
		Context:         store,
		AllowDirectExec: def.AllowDirectExec,
	}
	if def.OnRun != "" {
		handler, ok := b.reg.Handler(def.OnRun)
		if !ok {
			return d, fmt.Errorf("command '%s': on_run handler '%s' is not registered", def.Name, def.OnRun)
		}
		d.Handler = handler
	}
	for _, p := range def.Params {
		binding, err := b.binding(ctx, p)
		if err != nil {
			return d, fmt.Errorf("command '%s': %w", def.Name, err)
		}
		d.Params = append(d.Params, binding)
	}
	return d, nil
}
