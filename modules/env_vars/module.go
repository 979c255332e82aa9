// Package env_vars prints process environment variables.
package env_vars

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRunEnvVars prints NAME=value for the variables given with --name, or for
// the whole environment when none are given.
func OnRunEnvVars(ctx context.Context, call *command.Call) error {
	names := call.Strings("name")
	if len(names) > 0 {
		for _, n := range names {
			call.Printf("%s=%s\n", n, os.Getenv(n))
		}
		return nil
	}

	env := os.Environ()
	sort.Strings(env)
	for _, e := range env {
		if _, _, ok := strings.Cut(e, "="); ok {
			call.Println(e)
		}
	}
	return nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnRunEnvVars", OnRunEnvVars)
}
