package calculator

import (
	"context"
	"errors"
	"math"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// ErrDivisionByZero is returned by the divide command when n2 is zero.
var ErrDivisionByZero = errors.New("division by zero")

// OnRunAdd is the body of the standalone `add` command.
func OnRunAdd(ctx context.Context, call *command.Call) error {
	call.Printf("Total %d\n", call.Int("n1")+call.Int("n2"))
	return nil
}

// OnRunCalculatorAdd is the handler for `calculator add`.
func OnRunCalculatorAdd(ctx context.Context, call *command.Call) error {
	call.Printf("Answer %d\n", call.Int("n1")+call.Int("n2"))
	return nil
}

func OnRunCalculatorSubtract(ctx context.Context, call *command.Call) error {
	call.Printf("Answer %d\n", call.Int("n1")-call.Int("n2"))
	return nil
}

func OnRunCalculatorMultiply(ctx context.Context, call *command.Call) error {
	call.Printf("Answer %d\n", call.Int("n1")*call.Int("n2"))
	return nil
}

// OnRunCalculatorDivide prints n1/n2, floored when --round is given.
func OnRunCalculatorDivide(ctx context.Context, call *command.Call) error {
	n1, n2 := call.Int("n1"), call.Int("n2")
	if n2 == 0 {
		return ErrDivisionByZero
	}
	quotient := float64(n1) / float64(n2)
	ctxlog.FromContext(ctx).Debug("Dividing.", "n1", n1, "n2", n2, "round", call.Bool("round"))
	if call.Bool("round") {
		call.Printf("Answer %d\n", int(math.Floor(quotient)))
		return nil
	}
	call.Printf("Answer %g\n", quotient)
	return nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnRunAdd", OnRunAdd)
	r.RegisterHandler("OnRunCalculatorAdd", OnRunCalculatorAdd)
	r.RegisterHandler("OnRunCalculatorSubtract", OnRunCalculatorSubtract)
	r.RegisterHandler("OnRunCalculatorMultiply", OnRunCalculatorMultiply)
	r.RegisterHandler("OnRunCalculatorDivide", OnRunCalculatorDivide)
}
