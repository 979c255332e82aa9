package hcl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"

	"github.com/specialistvlad/cleago/internal/config"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/fsutil"
	"github.com/specialistvlad/cleago/internal/schema"
)

// ErrNoRoot is returned when no manifest declares a top-level command or
// group.
var ErrNoRoot = errors.New("no top-level command or group block found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader reading from fs. A nil fs means the OS
// filesystem.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

// Load parses every manifest found under paths. Exactly one top-level
// `command` or `group` block must exist across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(l.fs, ".hcl", paths...)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var roots []*config.CommandDefinition

	for _, file := range files {
		src, err := afero.ReadFile(l.fs, file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read HCL file %s: %w", file, err)
		}
		hclFile, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		defs, err := l.translateFile(ctx, &root)
		if err != nil {
			return nil, nil, fmt.Errorf("in %s: %w", file, err)
		}
		roots = append(roots, defs...)
		logger.Debug("Loaded HCL file.", "file", file, "top_level_blocks", len(defs))
	}

	switch len(roots) {
	case 0:
		return nil, nil, ErrNoRoot
	case 1:
	default:
		names := make([]string, len(roots))
		for i, r := range roots {
			names[i] = fmt.Sprintf("%q (%s)", r.Name, r.Source)
		}
		return nil, nil, fmt.Errorf("expected exactly one top-level command or group, found %d: %s", len(roots), strings.Join(names, ", "))
	}

	logger.Debug("HCL loading complete.", "root", roots[0].Name, "group", roots[0].IsGroup)
	return &config.Model{Root: roots[0]}, NewConverter(), nil
}
