package students

import (
	"context"
	"strings"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

const verbosityKey = "verbosity"

// OnRunStudents is the body of the `students` group. It records the chosen
// verbosity for the commands below it.
func OnRunStudents(ctx context.Context, call *command.Call) error {
	if v, ok := call.Member("verbosity"); ok {
		call.Context.Set(verbosityKey, v.Value)
		call.Println("verbosity:", v.Value)
	}
	return nil
}

// OnRunStudentAdd prints the student record it was given.
func OnRunStudentAdd(ctx context.Context, call *command.Call) error {
	var blood, gender string
	if m, ok := call.Member("blood_group"); ok {
		blood = m.Value
	}
	if m, ok := call.Member("gender"); ok {
		gender = m.Value
	}
	call.Printf("name=%s\n", call.String("name"))
	call.Printf("age=%d\n", call.Int("age"))
	call.Printf("score=%.1f\n", call.Float("score"))
	call.Printf("blood_group=%s\n", blood)
	call.Printf("gender=%s\n", gender)
	call.Printf("interests=[%s]\n", strings.Join(call.Strings("interests"), ", "))
	call.Printf("transfer=%t\n", call.Bool("transfer"))
	call.Printf("certificate=%s\n", call.String("certificate"))
	return nil
}

// OnRunStudentRemove reports the removal, with the verbosity set by the
// enclosing group when there is one.
func OnRunStudentRemove(ctx context.Context, call *command.Call) error {
	call.Printf("Removed %s\n", call.String("name"))
	if v := call.Context.Get(verbosityKey); v != nil {
		call.Printf("verbosity=%v\n", v)
	}
	return nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnRunStudents", OnRunStudents)
	r.RegisterHandler("OnRunStudentAdd", OnRunStudentAdd)
	r.RegisterHandler("OnRunStudentRemove", OnRunStudentRemove)
}
