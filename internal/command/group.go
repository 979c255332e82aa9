package command

import (
	"context"
	"io"

	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/parser"
)

// Group routes to named children.
type Group struct {
	base
	allowDirectExec bool
	order           []string
	children        map[string]Executable
}

func NewGroup(def Definition) *Group {
	return &Group{
		base:            newBase(parser.GroupVariant, def),
		allowDirectExec: def.AllowDirectExec,
		children:        make(map[string]Executable),
	}
}

func (*Group) executable() {}

// Add registers child under its name. A later child with the same name
// replaces the earlier one in place.
func (g *Group) Add(child Executable) {
	name := child.Name()
	if _, exists := g.children[name]; !exists {
		g.order = append(g.order, name)
	}
	g.children[name] = child
}

// Command builds a child command sharing the group's Context and adds it.
func (g *Group) Command(def Definition) *Command {
	def.Context = g.ctx
	c := NewCommand(def)
	g.Add(c)
	return c
}

// Group builds a child group sharing the group's Context and adds it.
func (g *Group) Group(def Definition) *Group {
	def.Context = g.ctx
	child := NewGroup(def)
	g.Add(child)
	return child
}

// Child looks up a registered child by name.
func (g *Group) Child(name string) (Executable, bool) {
	c, ok := g.children[name]
	return c, ok
}

// Children returns the children in registration order.
func (g *Group) Children() []Executable {
	out := make([]Executable, len(g.order))
	for i, name := range g.order {
		out[i] = g.children[name]
	}
	return out
}

// HasChild lets the group act as the parser's router.
func (g *Group) HasChild(name string) bool {
	_, ok := g.children[name]
	return ok
}

// Invoke parses argv up to the first child name. When a child is named, the
// group's handler runs first and the child is then invoked, non-isolated,
// with the remaining tokens. Its exit code is returned.
func (g *Group) Invoke(ctx context.Context, inv Invocation, argv []string) (int, error) {
	ctx, logger := ctxlog.With(ctx, "group", g.name)
	logger.Debug("Invoking group.", "argv", argv, "isolated", inv.Isolated)

	res, err := g.parser.Parse(ctx, argv, g)
	if err != nil {
		return 1, err
	}
	if res.VersionOnly {
		return g.printVersion(inv.stdout()), nil
	}

	if res.Child != "" {
		if code, err := g.run(ctx, inv, res); err != nil {
			return code, err
		}
		child := g.children[res.Child]
		logger.Debug("Dispatching to child.", "child", res.Child)
		return child.Invoke(ctx, Invocation{Stdout: inv.Stdout, Stderr: inv.Stderr}, res.SubArgv)
	}

	if g.allowDirectExec && !res.HelpOnly {
		return g.run(ctx, inv, res)
	}
	return g.Help(inv.stdout()), nil
}

func (g *Group) Help(w io.Writer) int {
	writeHelp(w, g.name, g.doc, g.parser)
	writeCommands(w, g.Children())
	return 0
}
