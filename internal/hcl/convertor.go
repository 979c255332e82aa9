package hcl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/cleago/internal/config"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/param"
)

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ConvertDefault converts the parameter's cty default into the Go type of the
// descriptor kind.
func (c *Converter) ConvertDefault(ctx context.Context, def *config.ParamDefinition, kind param.Kind) (any, error) {
	if def.Default == nil {
		return nil, nil
	}

	var target any
	switch kind {
	case param.KindString, param.KindChoice, param.KindChoiceByFlag, param.KindFile, param.KindDirectory:
		target = new(string)
	case param.KindInteger:
		target = new(int)
	case param.KindFloat:
		target = new(float64)
	case param.KindBoolean:
		target = new(bool)
	case param.KindList:
		target = new([]string)
	default:
		return nil, fmt.Errorf("param %q: type %s does not take a default", def.Name, kind)
	}

	if err := c.decode(ctx, *def.Default, target); err != nil {
		return nil, fmt.Errorf("param %q: failed to apply default: %w", def.Name, err)
	}
	value := reflect.ValueOf(target).Elem().Interface()
	if list, ok := value.([]string); ok && list == nil {
		value = []string{}
	}
	return value, nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	logger.Debug("Preparing to decode value.",
		"source_type", val.Type().FriendlyName(),
		"target_type", impliedType.FriendlyName(),
	)

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
