package config

import (
	"context"

	"github.com/specialistvlad/cleago/internal/param"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given files or directories, translates
	// them into the format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter turns the raw default of a parameter into the Go value the
// descriptor of the given kind expects: string, int, float64, bool or
// []string. Choice kinds receive the member value as a string. A parameter
// without a default converts to nil.
type Converter interface {
	ConvertDefault(ctx context.Context, def *ParamDefinition, kind param.Kind) (any, error)
}
