package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/cleago/internal/clictx"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/param"
	"github.com/specialistvlad/cleago/internal/parser"
)

// Invocation carries the output streams and the isolation switch for one
// Invoke call.
type Invocation struct {
	Stdout io.Writer
	Stderr io.Writer
	// Isolated turns handler failures into exit code 1 instead of returning
	// them.
	Isolated bool
}

func (inv Invocation) stdout() io.Writer {
	if inv.Stdout == nil {
		return os.Stdout
	}
	return inv.Stdout
}

func (inv Invocation) stderr() io.Writer {
	if inv.Stderr == nil {
		return os.Stderr
	}
	return inv.Stderr
}

// Executable is implemented by *Command and *Group only.
type Executable interface {
	Name() string
	// Summary is the first line of the documentation.
	Summary() string
	Context() clictx.Store
	Invoke(ctx context.Context, inv Invocation, argv []string) (int, error)
	Help(w io.Writer) int
	executable()
}

// Definition declares a command or group.
type Definition struct {
	Name    string
	Doc     string
	Version string
	// Params are registered in order. Bindings of kind context receive the
	// shared Context as their default.
	Params []parser.Binding
	// Context defaults to a fresh clictx.Context.
	Context clictx.Store
	// Handler may be nil for a body that does nothing.
	Handler HandlerFunc
	// AllowDirectExec lets a group run its own body when no child is named.
	// Ignored for commands.
	AllowDirectExec bool
}

type base struct {
	name    string
	doc     string
	version string
	ctx     clictx.Store
	handler HandlerFunc
	parser  *parser.Parser
}

func newBase(variant parser.Variant, def Definition) base {
	if def.Name == "" {
		panic("command: definition without a name")
	}
	store := def.Context
	if store == nil {
		store = clictx.New()
	}

	bindings := make([]parser.Binding, 0, len(def.Params)+1)
	for _, b := range def.Params {
		if b.Param.Kind() == param.KindContext && b.Default == nil {
			b.Default = store
		}
		bindings = append(bindings, b)
	}
	if def.Version != "" {
		bindings = append(bindings, parser.Binding{Name: "version", Param: param.NewVersion(param.Options{})})
	}

	return base{
		name:    def.Name,
		doc:     strings.TrimSpace(def.Doc),
		version: def.Version,
		ctx:     store,
		handler: def.Handler,
		parser:  parser.Build(variant, bindings...),
	}
}

func (b *base) Name() string          { return b.name }
func (b *base) Context() clictx.Store { return b.ctx }

func (b *base) Summary() string {
	first, _, _ := strings.Cut(b.doc, "\n")
	return strings.TrimSpace(first)
}

func (b *base) printVersion(w io.Writer) int {
	fmt.Fprintln(w, b.version)
	return 0
}

// run calls the handler. Failures are returned, or reported and mapped to
// exit code 1 when the invocation is isolated.
func (b *base) run(ctx context.Context, inv Invocation, res *parser.Result) (int, error) {
	if b.handler == nil {
		return 0, nil
	}
	call := &Call{
		Command:  b.name,
		Args:     res.Args,
		ArgNames: res.ArgNames,
		Flags:    res.Flags,
		Context:  b.ctx,
		Stdout:   inv.stdout(),
		Stderr:   inv.stderr(),
	}
	if err := b.handler(ctx, call); err != nil {
		if inv.Isolated {
			ctxlog.FromContext(ctx).Debug("Handler failed in isolated mode.", "error", err)
			ReportError(inv.stderr(), err)
			return 1, nil
		}
		return 1, err
	}
	return 0, nil
}

// Command is a leaf in the command tree.
type Command struct {
	base
}

func NewCommand(def Definition) *Command {
	return &Command{base: newBase(parser.CommandVariant, def)}
}

func (*Command) executable() {}

// Invoke parses argv and runs the handler. Parse errors are always returned.
func (c *Command) Invoke(ctx context.Context, inv Invocation, argv []string) (int, error) {
	ctx, logger := ctxlog.With(ctx, "command", c.name)
	logger.Debug("Invoking command.", "argv", argv, "isolated", inv.Isolated)

	res, err := c.parser.Parse(ctx, argv, nil)
	if err != nil {
		return 1, err
	}
	switch {
	case res.HelpOnly:
		return c.Help(inv.stdout()), nil
	case res.VersionOnly:
		return c.printVersion(inv.stdout()), nil
	}
	return c.run(ctx, inv, res)
}

func (c *Command) Help(w io.Writer) int {
	writeHelp(w, c.name, c.doc, c.parser)
	return 0
}
