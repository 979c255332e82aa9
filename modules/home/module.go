// Package home shows a custom context type registered by name.
package home

import (
	"context"
	"fmt"

	"github.com/specialistvlad/cleago/internal/clictx"
	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Context adds application settings to the shared context.
type Context struct {
	*clictx.Context
	home string
}

// NewContext is registered as the "home" context factory.
func NewContext() clictx.Store {
	return &Context{Context: clictx.New(), home: "~/.app"}
}

// Config returns the application settings.
func (c *Context) Config() map[string]string {
	return map[string]string{"home": c.home}
}

// OnRunHome prints the configured home path.
func OnRunHome(ctx context.Context, call *command.Call) error {
	c, ok := call.Context.(*Context)
	if !ok {
		return fmt.Errorf("home: expected *home.Context, got %T", call.Context)
	}
	call.Println(c.Config()["home"])
	return nil
}

// Register registers the handler and context factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterContext("home", NewContext)
	r.RegisterHandler("OnRunHome", OnRunHome)
}
