package command

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/cleago/internal/clictx"
	"github.com/specialistvlad/cleago/internal/param"
)

// HandlerFunc is the body of a command or group.
type HandlerFunc func(ctx context.Context, call *Call) error

// Call carries the parsed values into a handler.
type Call struct {
	// Command is the name of the command being run.
	Command  string
	Args     []any
	ArgNames []string
	Flags    map[string]any
	Context  clictx.Store
	Stdout   io.Writer
	Stderr   io.Writer
}

// Value returns the value bound to name, flags first.
func (c *Call) Value(name string) any {
	if v, ok := c.Flags[name]; ok {
		return v
	}
	for i, n := range c.ArgNames {
		if n == name {
			return c.Args[i]
		}
	}
	return nil
}

func (c *Call) String(name string) string {
	s, _ := c.Value(name).(string)
	return s
}

func (c *Call) Int(name string) int {
	i, _ := c.Value(name).(int)
	return i
}

func (c *Call) Float(name string) float64 {
	switch v := c.Value(name).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (c *Call) Bool(name string) bool {
	b, _ := c.Value(name).(bool)
	return b
}

func (c *Call) Strings(name string) []string {
	s, _ := c.Value(name).([]string)
	return s
}

// Member returns the enum member bound to name. ok is false when nothing was
// selected.
func (c *Call) Member(name string) (m param.Member, ok bool) {
	m, ok = c.Value(name).(param.Member)
	return m, ok
}

// Printf writes to the call's stdout.
func (c *Call) Printf(format string, a ...any) {
	fmt.Fprintf(c.Stdout, format, a...)
}

func (c *Call) Println(a ...any) {
	fmt.Fprintln(c.Stdout, a...)
}
