package param

import (
	"strconv"
	"strings"
)

// String passes the raw token through unchanged.
type String struct {
	Base
}

func NewString(opts Options) *String {
	return &String{Base: newBase(KindString, opts)}
}

func (s *String) Parse(raw string, _ *Accumulator) (any, error) {
	return raw, nil
}

// Integer parses base-10 integers.
type Integer struct {
	Base
}

func NewInteger(opts Options) *Integer {
	return &Integer{Base: newBase(KindInteger, opts)}
}

func (i *Integer) Parse(raw string, _ *Accumulator) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, i.typeError(raw)
	}
	return n, nil
}

// Float parses 64-bit floating point numbers.
type Float struct {
	Base
}

func NewFloat(opts Options) *Float {
	return &Float{Base: newBase(KindFloat, opts)}
}

func (f *Float) Parse(raw string, _ *Accumulator) (any, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, f.typeError(raw)
	}
	return n, nil
}

// Boolean is a presence toggle. A nil default becomes false, which also makes
// every Boolean a flag.
type Boolean struct {
	Base
}

func NewBoolean(opts Options) *Boolean {
	if opts.Default == nil {
		opts.Default = false
	}
	return &Boolean{Base: newBase(KindBoolean, opts)}
}

// Parse ignores raw and returns the negated default: giving the flag flips it.
func (b *Boolean) Parse(_ string, _ *Accumulator) (any, error) {
	current, _ := b.def.(bool)
	return !current, nil
}
