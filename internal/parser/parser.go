package parser

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/param"
)

// Variant selects command or group scanning rules.
type Variant int

const (
	CommandVariant Variant = iota
	GroupVariant
)

func (v Variant) String() string {
	if v == GroupVariant {
		return "group"
	}
	return "command"
}

// Router answers whether a token names a child command.
type Router interface {
	HasChild(name string) bool
}

// Result is the outcome of a clean scan.
type Result struct {
	// Args holds parsed positional values in declaration order.
	Args []any
	// ArgNames holds the descriptor name for each entry of Args.
	ArgNames []string
	// Flags maps descriptor names to parsed or default values.
	Flags       map[string]any
	HelpOnly    bool
	VersionOnly bool
	// Child is the matched child name (group variant only).
	Child   string
	SubArgv []string
}

// Value looks name up among flags, then positionals.
func (r *Result) Value(name string) (any, bool) {
	if v, ok := r.Flags[name]; ok {
		return v, true
	}
	for i, n := range r.ArgNames {
		if n == name {
			return r.Args[i], true
		}
	}
	return nil, false
}

// Parser holds the registered descriptors of one command or group.
type Parser struct {
	variant    Variant
	positional []param.Parameter
	flags      map[string]param.Parameter
	// options lists distinct flag descriptors in registration order.
	options  []param.Parameter
	injected []param.Parameter
}

func New(variant Variant) *Parser {
	return &Parser{
		variant: variant,
		flags:   make(map[string]param.Parameter),
	}
}

func (p *Parser) Variant() Variant { return p.variant }

// Add registers def. Its positional/flag role is decided here, once.
// Registering an unnamed descriptor is a programmer error and panics.
func (p *Parser) Add(def param.Parameter) {
	if def.Name() == "" {
		panic(fmt.Sprintf("parser: %s parameter registered without a name", def.Kind()))
	}

	switch {
	case def.Kind() == param.KindContext:
		p.injected = append(p.injected, def)
	case def.Kind() == param.KindChoiceByFlag, !param.IsPositional(def):
		for _, flag := range def.Flags() {
			p.flags[flag] = def
		}
		p.options = append(p.options, def)
	default:
		p.positional = append(p.positional, def)
	}
}

// Positionals returns the positional descriptors in declaration order.
func (p *Parser) Positionals() []param.Parameter {
	return slices.Clone(p.positional)
}

// Options returns the distinct flag descriptors in registration order.
func (p *Parser) Options() []param.Parameter {
	return slices.Clone(p.options)
}

// ArgVars returns the usage-line names of the positional descriptors.
func (p *Parser) ArgVars() []string {
	vars := make([]string, len(p.positional))
	for i, def := range p.positional {
		vars[i] = def.Var()
	}
	return vars
}

// Parse scans argv. children is consulted only by the group variant and may
// be nil.
func (p *Parser) Parse(ctx context.Context, argv []string, children Router) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parser scan started.", "variant", p.variant.String(), "argc", len(argv))

	flags := maps.Clone(p.flags)
	queue := slices.Clone(p.positional)
	acc := param.NewAccumulator()
	res := &Result{Flags: make(map[string]any)}

	for i, arg := range argv {
		if p.variant == GroupVariant && children != nil && children.HasChild(arg) {
			res.Child = arg
			res.SubArgv = slices.Clone(argv[i+1:])
			logger.Debug("Parser matched child command.", "child", arg, "sub_argc", len(res.SubArgv))
			break
		}
		if arg == "--help" {
			logger.Debug("Parser switched to help-only mode.", "position", i)
			return &Result{Flags: make(map[string]any), HelpOnly: true}, nil
		}

		if strings.HasPrefix(arg, "-") {
			flag, value, hasValue := strings.Cut(arg, "=")
			if !hasValue {
				value = flag
			}
			def, ok := flags[flag]
			if !ok {
				return nil, &ExtraArgumentError{Flag: flag}
			}
			if def.Kind() == param.KindVersion {
				logger.Debug("Parser switched to version-only mode.", "position", i)
				return &Result{Flags: make(map[string]any), VersionOnly: true}, nil
			}
			v, err := def.Parse(value, acc)
			if err != nil {
				return nil, err
			}
			res.Flags[def.Name()] = v
			if !def.IsContainer() {
				// Every alias of the descriptor is spent, not just the one used.
				for _, alias := range def.Flags() {
					delete(flags, alias)
				}
			}
			continue
		}

		if len(queue) == 0 {
			return nil, &ExtraArgumentError{Arg: arg}
		}
		def := queue[0]
		queue = queue[1:]
		v, err := def.Parse(arg, acc)
		if err != nil {
			return nil, err
		}
		res.Args = append(res.Args, v)
		res.ArgNames = append(res.ArgNames, def.Name())
	}

	if len(queue) > 0 {
		missing := make([]string, len(queue))
		for i, def := range queue {
			missing[i] = def.Metavar()
		}
		return nil, &ArgumentsMissingError{Missing: missing}
	}

	for _, def := range p.options {
		if _, bound := res.Flags[def.Name()]; bound || def.Kind() == param.KindVersion {
			continue
		}
		res.Flags[def.Name()] = defaultOf(def)
	}
	for _, def := range p.injected {
		res.Flags[def.Name()] = def.Default()
	}

	logger.Debug("Parser scan finished.", "args", len(res.Args), "flags", len(res.Flags), "child", res.Child)
	return res, nil
}

type listDefault interface {
	DefaultValues() []string
}

func defaultOf(def param.Parameter) any {
	if def.IsContainer() {
		if l, ok := def.(listDefault); ok {
			return l.DefaultValues()
		}
	}
	return def.Default()
}
