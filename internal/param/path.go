package param

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// PathOptions configures File and Directory descriptors.
type PathOptions struct {
	Options
	// Exists requires the path to exist.
	Exists bool
	// Resolve returns the absolute form of the path.
	Resolve bool
	// Fs is consulted for existence checks. Defaults to the OS filesystem.
	Fs afero.Fs
}

type pathRule struct {
	fs      afero.Fs
	exists  bool
	resolve bool
	wantDir bool
}

func newPathRule(opts PathOptions, wantDir bool) pathRule {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return pathRule{fs: fs, exists: opts.Exists, resolve: opts.Resolve, wantDir: wantDir}
}

func (r pathRule) check(b *Base, raw string) (any, error) {
	path := filepath.Clean(raw)
	flag := b.ShortFlag()
	if flag == "" {
		flag = b.LongFlag()
	}
	invalid := func(reason string) error {
		return &ParsingError{
			Param:   b.Metavar(),
			Value:   raw,
			Message: fmt.Sprintf("Invalid value for %s provided path `%s` %s", flag, path, reason),
		}
	}

	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return nil, invalid(fmt.Sprintf("could not be inspected: %v", err))
	}
	if r.exists && !exists {
		return nil, invalid("does not exist")
	}
	if exists {
		isDir, err := afero.IsDir(r.fs, path)
		if err != nil {
			return nil, invalid(fmt.Sprintf("could not be inspected: %v", err))
		}
		if r.wantDir && !isDir {
			return nil, invalid("is not a directory")
		}
		if !r.wantDir && isDir {
			return nil, invalid("is not a file")
		}
	}

	if !r.resolve {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, invalid(fmt.Sprintf("could not be resolved: %v", err))
	}
	if _, onDisk := r.fs.(*afero.OsFs); onDisk && exists {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
	}
	return abs, nil
}

// File accepts a path that, if it exists, is not a directory.
type File struct {
	Base
	rule pathRule
}

func NewFile(opts PathOptions) *File {
	return &File{Base: newBase(KindFile, opts.Options), rule: newPathRule(opts, false)}
}

func (f *File) Parse(raw string, _ *Accumulator) (any, error) {
	return f.rule.check(&f.Base, raw)
}

// Directory accepts a path that, if it exists, is a directory.
type Directory struct {
	Base
	rule pathRule
}

func NewDirectory(opts PathOptions) *Directory {
	return &Directory{Base: newBase(KindDirectory, opts.Options), rule: newPathRule(opts, true)}
}

func (d *Directory) Parse(raw string, _ *Accumulator) (any, error) {
	return d.rule.check(&d.Base, raw)
}
