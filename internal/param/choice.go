package param

import (
	"fmt"
	"strings"
)

// Member is one value of an Enum.
type Member struct {
	Name  string
	Value string
}

func (m Member) String() string { return m.Value }

// Enum is an ordered set of members.
type Enum []Member

// NewEnum builds an Enum from values; member names are the upper-cased
// values with hyphens turned into underscores.
func NewEnum(values ...string) Enum {
	e := make(Enum, 0, len(values))
	for _, v := range values {
		e = append(e, Member{
			Name:  strings.ToUpper(strings.ReplaceAll(v, "-", "_")),
			Value: v,
		})
	}
	return e
}

func (e Enum) Values() []string {
	out := make([]string, len(e))
	for i, m := range e {
		out[i] = m.Value
	}
	return out
}

func (e Enum) ByValue(v string) (Member, bool) {
	for _, m := range e {
		if m.Value == v {
			return m, true
		}
	}
	return Member{}, false
}

func (e Enum) ByName(name string) (Member, bool) {
	for _, m := range e {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

func (e Enum) expected() string {
	return "{" + strings.Join(e.Values(), ", ") + "}"
}

func enumError(b *Base, e Enum, raw string) error {
	return &ParsingError{
		Param: b.Metavar(),
		Value: raw,
		Message: fmt.Sprintf("Error parsing value for %s; Provided value=%s; Expected value from %s",
			b.Metavar(), raw, e.expected()),
	}
}

// Choice selects an enum member by value: `-b=OP`, or positionally.
type Choice struct {
	Base
	enum Enum
}

func NewChoice(enum Enum, opts Options) *Choice {
	return &Choice{Base: newBase(KindChoice, opts), enum: enum}
}

func (c *Choice) Enum() Enum { return c.enum }

func (c *Choice) Parse(raw string, _ *Accumulator) (any, error) {
	m, ok := c.enum.ByValue(raw)
	if !ok {
		return nil, enumError(&c.Base, c.enum, raw)
	}
	return m, nil
}

func (c *Choice) HelpLine() string {
	prefix := c.flagText() + "  [" + strings.Join(c.enum.Values(), "|") + "]"
	return wrapHelp(prefix, c.help)
}

// ChoiceByFlag selects an enum member by which of its flags appears.
type ChoiceByFlag struct {
	Base
	enum  Enum
	flags []string
	byKey map[string]Member
}

// NewChoiceByFlag ignores opts.Short and opts.Long: the flags come from the
// member names.
func NewChoiceByFlag(enum Enum, opts Options) *ChoiceByFlag {
	opts.Short, opts.Long = "", ""
	c := &ChoiceByFlag{
		Base:  newBase(KindChoiceByFlag, opts),
		enum:  enum,
		byKey: make(map[string]Member, len(enum)),
	}
	for _, m := range enum {
		flag := "--" + strings.ReplaceAll(strings.ToLower(m.Name), "_", "-")
		c.flags = append(c.flags, flag)
		c.byKey[flag] = m
	}
	return c
}

func (c *ChoiceByFlag) Enum() Enum { return c.enum }

func (c *ChoiceByFlag) Flags() []string {
	out := make([]string, len(c.flags))
	copy(out, c.flags)
	return out
}

// Parse expects the flag text itself, as passed for bare flags.
func (c *ChoiceByFlag) Parse(raw string, _ *Accumulator) (any, error) {
	m, ok := c.byKey[raw]
	if !ok {
		return nil, enumError(&c.Base, c.enum, raw)
	}
	return m, nil
}

func (c *ChoiceByFlag) HelpLine() string {
	return wrapHelp(strings.Join(c.flags, ", "), c.help)
}
