package registry

import (
	"slices"

	"github.com/specialistvlad/cleago/internal/clictx"
	"github.com/specialistvlad/cleago/internal/command"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// ContextFactory creates the shared context for a command tree. Custom
// contexts embed *clictx.Context.
type ContextFactory func() clictx.Store

// Registry holds the registered handlers and context factories for a single
// application instance.
type Registry struct {
	handlers map[string]command.HandlerFunc
	contexts map[string]ContextFactory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]command.HandlerFunc),
		contexts: make(map[string]ContextFactory),
	}
}

// Handler looks up a handler by name.
func (r *Registry) Handler(name string) (command.HandlerFunc, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Context looks up a context factory by name.
func (r *Registry) Context(name string) (ContextFactory, bool) {
	f, ok := r.contexts[name]
	return f, ok
}

// HandlerNames returns the registered handler names, sorted.
func (r *Registry) HandlerNames() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
