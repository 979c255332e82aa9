// Package clictx provides the runtime context shared by a group and the
// commands below it during a single invocation.
package clictx

import (
	"os"
)

// Store is implemented by *Context and by any custom context that embeds it.
type Store interface {
	Set(key, value any)
	Get(key any) any
	GetOr(key, def any) any
	Cwd() string
}

// Context is a mutable key-value bag. It is not safe for concurrent use.
type Context struct {
	data map[any]any
	cwd  string
}

// New creates an empty Context bound to the current working directory.
func New() *Context {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Context{
		data: make(map[any]any),
		cwd:  cwd,
	}
}

// Set stores value under key, replacing any previous value.
func (c *Context) Set(key, value any) {
	c.data[key] = value
}

// Get returns the value stored under key, or nil.
func (c *Context) Get(key any) any {
	return c.data[key]
}

// GetOr returns the value stored under key, or def when the key is absent.
func (c *Context) GetOr(key, def any) any {
	if v, ok := c.data[key]; ok {
		return v
	}
	return def
}

// Cwd returns the working directory captured when the context was created.
func (c *Context) Cwd() string {
	return c.cwd
}
