package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/cleago/internal/config"
	"github.com/specialistvlad/cleago/internal/param"
	"github.com/specialistvlad/cleago/internal/parser"
)

// binding creates the descriptor for p with its converted default.
func (b *builder) binding(ctx context.Context, p *config.ParamDefinition) (parser.Binding, error) {
	kind, ok := param.ParseKind(p.Type)
	if !ok || kind == param.KindVersion {
		return parser.Binding{}, fmt.Errorf("param '%s': unknown type '%s'", p.Name, p.Type)
	}

	def, err := b.conv.ConvertDefault(ctx, p, kind)
	if err != nil {
		return parser.Binding{}, err
	}
	opts := param.Options{Short: p.Short, Long: p.Long, Help: p.Help, Env: p.Env}

	var desc param.Parameter
	switch kind {
	case param.KindString:
		desc = param.NewString(opts)
	case param.KindInteger:
		desc = param.NewInteger(opts)
	case param.KindFloat:
		desc = param.NewFloat(opts)
	case param.KindBoolean:
		desc = param.NewBoolean(opts)
	case param.KindList:
		if list, ok := def.([]string); ok {
			opts.Default = list
			def = nil
		}
		desc = param.NewStringList(opts)
	case param.KindChoice, param.KindChoiceByFlag:
		enum := param.NewEnum(p.Choices...)
		if def != nil {
			member, found := enum.ByValue(def.(string))
			if !found {
				return parser.Binding{}, fmt.Errorf("param '%s': default %q is not one of %v", p.Name, def, p.Choices)
			}
			def = member
		}
		if kind == param.KindChoice {
			desc = param.NewChoice(enum, opts)
		} else {
			desc = param.NewChoiceByFlag(enum, opts)
		}
	case param.KindFile, param.KindDirectory:
		pathOpts := param.PathOptions{Options: opts, Exists: p.Exists, Resolve: p.Resolve, Fs: b.fs}
		if kind == param.KindFile {
			desc = param.NewFile(pathOpts)
		} else {
			desc = param.NewDirectory(pathOpts)
		}
	case param.KindContext:
		desc = param.NewContextParam()
	}

	return parser.Binding{Name: p.Name, Param: desc, Default: def}, nil
}
