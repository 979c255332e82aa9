package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/cleago/internal/config"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/param"
)

// Validate performs a strict parity check between a manifest and the
// registered Go code. Every problem found is reported in one error.
func (r *Registry) Validate(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	if model == nil || model.Root == nil {
		return fmt.Errorf("registry validation failed: manifest has no root command")
	}

	var errs []string
	model.Root.Walk(func(path []string, def *config.CommandDefinition) {
		where := strings.Join(path, " ")

		if def.OnRun != "" {
			if _, ok := r.handlers[def.OnRun]; !ok {
				errs = append(errs, fmt.Sprintf("command '%s': on_run handler '%s' is not registered", where, def.OnRun))
			}
		}
		if def.Context != "" {
			if def != model.Root {
				errs = append(errs, fmt.Sprintf("command '%s': context '%s' can only be set on the root; children share the root context", where, def.Context))
			} else if _, ok := r.contexts[def.Context]; !ok {
				errs = append(errs, fmt.Sprintf("command '%s': context '%s' is not registered", where, def.Context))
			}
		}
		if !def.IsGroup && def.AllowDirectExec {
			errs = append(errs, fmt.Sprintf("command '%s': allow_direct_exec only applies to groups", where))
		}

		seen := make(map[string]struct{}, len(def.Params))
		for _, p := range def.Params {
			if _, dup := seen[p.Name]; dup {
				errs = append(errs, fmt.Sprintf("command '%s': param '%s' declared twice", where, p.Name))
			}
			seen[p.Name] = struct{}{}
			errs = append(errs, validateParam(where, p)...)
		}

		children := make(map[string]struct{}, len(def.Children))
		for _, child := range def.Children {
			if _, dup := children[child.Name]; dup {
				logger.Warn("Child declared twice; the last declaration wins.", "group", where, "child", child.Name)
			}
			children[child.Name] = struct{}{}
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "root", model.Root.Name)
	return nil
}

func validateParam(where string, p *config.ParamDefinition) []string {
	var errs []string
	kind, ok := param.ParseKind(p.Type)
	if !ok || kind == param.KindVersion {
		return []string{fmt.Sprintf("command '%s', param '%s': unknown type '%s'", where, p.Name, p.Type)}
	}

	isChoice := kind == param.KindChoice || kind == param.KindChoiceByFlag
	switch {
	case isChoice && len(p.Choices) == 0:
		errs = append(errs, fmt.Sprintf("command '%s', param '%s': %s requires choices", where, p.Name, kind))
	case !isChoice && len(p.Choices) > 0:
		errs = append(errs, fmt.Sprintf("command '%s', param '%s': choices only apply to choice types", where, p.Name))
	}
	isPath := kind == param.KindFile || kind == param.KindDirectory
	if !isPath && (p.Exists || p.Resolve) {
		errs = append(errs, fmt.Sprintf("command '%s', param '%s': exists and resolve only apply to file and directory", where, p.Name))
	}
	if kind == param.KindChoiceByFlag && (p.Short != "" || p.Long != "") {
		errs = append(errs, fmt.Sprintf("command '%s', param '%s': choice_by_flag derives its flags from the choices", where, p.Name))
	}
	if kind == param.KindContext && p.Default != nil {
		errs = append(errs, fmt.Sprintf("command '%s', param '%s': context does not take a default", where, p.Name))
	}
	for _, flag := range []string{p.Short, p.Long} {
		if flag != "" && !strings.HasPrefix(flag, "-") {
			errs = append(errs, fmt.Sprintf("command '%s', param '%s': flag '%s' must start with '-'", where, p.Name, flag))
		}
	}
	return errs
}
