package param

import (
	"fmt"
	"strings"
)

// HelpColumn is the column at which help text starts in an options listing.
const HelpColumn = 30

// Kind tags the value type of a descriptor.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindList
	KindChoice
	KindChoiceByFlag
	KindFile
	KindDirectory
	KindContext
	KindVersion
)

var kindKeywords = map[Kind]string{
	KindString:       "string",
	KindInteger:      "integer",
	KindFloat:        "float",
	KindBoolean:      "boolean",
	KindList:         "list",
	KindChoice:       "choice",
	KindChoiceByFlag: "choice_by_flag",
	KindFile:         "file",
	KindDirectory:    "directory",
	KindContext:      "context",
	KindVersion:      "version",
}

// String returns the manifest keyword for the kind.
func (k Kind) String() string {
	if s, ok := kindKeywords[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TypeName is the short type name used in metavars and error messages.
func (k Kind) TypeName() string {
	switch k {
	case KindString:
		return "str"
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "bool"
	case KindList:
		return "list"
	case KindChoice, KindChoiceByFlag:
		return "enum"
	case KindFile, KindDirectory:
		return "path"
	case KindContext:
		return "context"
	case KindVersion:
		return "version"
	default:
		return "unknown"
	}
}

// ParseKind maps a manifest keyword back to its Kind.
func ParseKind(keyword string) (Kind, bool) {
	for k, s := range kindKeywords {
		if s == keyword {
			return k, true
		}
	}
	return 0, false
}

// Parameter is the contract the parser relies on. Every concrete descriptor
// embeds Base and adds its own Parse.
type Parameter interface {
	Name() string
	SetName(name string)
	ShortFlag() string
	LongFlag() string
	// Flags lists every flag string that selects this descriptor.
	Flags() []string
	Default() any
	SetDefault(value any)
	HelpText() string
	Env() string
	Kind() Kind
	IsContainer() bool
	Metavar() string
	Var() string
	HelpLine() string
	Parse(raw string, acc *Accumulator) (any, error)
}

// Options holds the attributes shared by all descriptors.
type Options struct {
	Short   string
	Long    string
	Default any
	Help    string
	Env     string
}

// Base implements the attribute accessors of Parameter.
type Base struct {
	name  string
	short string
	long  string
	def   any
	help  string
	env   string
	kind  Kind
}

func newBase(kind Kind, opts Options) Base {
	return Base{
		short: opts.Short,
		long:  opts.Long,
		def:   opts.Default,
		help:  opts.Help,
		env:   opts.Env,
		kind:  kind,
	}
}

func (b *Base) Name() string        { return b.name }
func (b *Base) SetName(name string) { b.name = name }
func (b *Base) ShortFlag() string   { return b.short }
func (b *Base) Default() any        { return b.def }
func (b *Base) SetDefault(v any)    { b.def = v }
func (b *Base) HelpText() string    { return b.help }
func (b *Base) Env() string         { return b.env }
func (b *Base) Kind() Kind          { return b.kind }
func (b *Base) IsContainer() bool   { return false }

// LongFlag returns the explicit long flag, or `--` plus the name with
// underscores turned into hyphens.
func (b *Base) LongFlag() string {
	if b.long != "" {
		return b.long
	}
	return "--" + strings.ReplaceAll(b.name, "_", "-")
}

func (b *Base) Flags() []string {
	if b.short != "" {
		return []string{b.short, b.LongFlag()}
	}
	return []string{b.LongFlag()}
}

// Metavar renders the descriptor as `<NAME type=T>`.
func (b *Base) Metavar() string {
	return fmt.Sprintf("<%s type=%s>", b.Var(), b.kind.TypeName())
}

// Var is the upper-cased name shown on usage lines.
func (b *Base) Var() string {
	return strings.ToUpper(b.name)
}

func (b *Base) HelpLine() string {
	return padHelp(b.flagText(), b.help)
}

// flagText is `-s, --long` or `--long`.
func (b *Base) flagText() string {
	if b.short != "" {
		return b.short + ", " + b.LongFlag()
	}
	return b.LongFlag()
}

func (b *Base) typeError(raw string) error {
	return &ParsingError{
		Param: b.Metavar(),
		Value: raw,
		Message: fmt.Sprintf("Error parsing value for %s; Provided value=%s; Expected type=%s",
			b.Metavar(), raw, b.kind.TypeName()),
	}
}

// IsPositional reports whether p is bound by position under the registration
// rule: no default and no short flag.
func IsPositional(p Parameter) bool {
	return p.Default() == nil && p.ShortFlag() == ""
}
