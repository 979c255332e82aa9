package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/cleago/internal/command"
)

// RegisterHandler registers a Go function under the name manifests use in
// `on_run`.
func (r *Registry) RegisterHandler(name string, fn command.HandlerFunc) {
	if fn == nil {
		panic(fmt.Sprintf("handler '%s' registered with a nil function", name))
	}
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("handler with name '%s' already registered", name))
	}
	slog.Debug("Registering handler.", "name", name)
	r.handlers[name] = fn
}

// RegisterContext registers a context factory under the name manifests use
// in `context`.
func (r *Registry) RegisterContext(name string, fn ContextFactory) {
	if fn == nil {
		panic(fmt.Sprintf("context '%s' registered with a nil factory", name))
	}
	if _, exists := r.contexts[name]; exists {
		panic(fmt.Sprintf("context with name '%s' already registered", name))
	}
	slog.Debug("Registering context factory.", "name", name)
	r.contexts[name] = fn
}
