// Package admin shows a context shared by a group, a nested group and the
// commands below them.
package admin

import (
	"context"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func OnRunAdmin(ctx context.Context, call *command.Call) error {
	call.Context.Set("foo", "bar")
	return nil
}

func OnRunManage(ctx context.Context, call *command.Call) error {
	call.Context.Set("hello", "world")
	return nil
}

// OnRunManageShow prints what the enclosing groups stored.
func OnRunManageShow(ctx context.Context, call *command.Call) error {
	call.Println(call.Context.GetOr("foo", "<unset>"))
	call.Println(call.Context.GetOr("hello", "<unset>"))
	return nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnRunAdmin", OnRunAdmin)
	r.RegisterHandler("OnRunManage", OnRunManage)
	r.RegisterHandler("OnRunManageShow", OnRunManageShow)
}
