package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/cleago/internal/builder"
	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/config"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	model    *config.Model
	root     command.Executable
}

// NewApp is the constructor for the main application. It loads the
// manifests, registers the Go modules, validates one against the other and
// builds the command tree. Logs go to errW. Any failure is a startup error
// and panics.
func NewApp(outW, errW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all manifests into the format-agnostic model first.
	model, converter, err := loader.Load(ctx, cfg.ManifestPaths...)
	if err != nil {
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.", "root", model.Root.Name)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "handlers", reg.HandlerNames())

	// A mismatch between code and manifest is a programmer error, so we panic.
	if err := reg.Validate(ctx, model); err != nil {
		panic(err)
	}

	root, err := builder.Build(ctx, model, reg, converter)
	if err != nil {
		panic(fmt.Errorf("failed to build command tree: %w", err))
	}
	logger.Debug("Command tree built.", "root", root.Name())

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		model:    model,
		root:     root,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Root returns the built command tree.
func (a *App) Root() command.Executable {
	return a.root
}
