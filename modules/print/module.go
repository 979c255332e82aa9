// Package print echoes key=value pairs given on the command line.
package print

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRunPrint prints every `--value=key=value` entry, sorted by key.
func OnRunPrint(ctx context.Context, call *command.Call) error {
	entries := call.Strings("value")
	ctxlog.FromContext(ctx).Debug("Printing input", "count", len(entries))

	if len(entries) == 0 {
		call.Println("(null)")
		return nil
	}

	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("invalid value %q: expected key=value", entry)
		}
		values[k] = v
	}

	// Sort keys for consistent output
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		call.Printf("%s = %q\n", k, values[k])
	}
	return nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnRunPrint", OnRunPrint)
}
