package app

import (
	"context"

	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/runner"
)

// Run dispatches argv to the command tree and returns the program's exit
// code. In isolated mode the captured output is copied to the app's writers
// and the error is always nil.
func (a *App) Run(ctx context.Context, argv []string) (int, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "argv", argv)

	res, err := runner.Run(ctx, a.root, argv, runner.Options{
		Isolated: a.config.Isolated,
		Stdout:   a.outW,
		Stderr:   a.errW,
	})
	if a.config.Isolated {
		_, _ = a.outW.Write([]byte(res.Stdout))
		_, _ = a.errW.Write([]byte(res.Stderr))
	}

	a.logger.Debug("App.Run method finished.", "exit_code", res.ExitCode, "invocation_id", res.InvocationID)
	return res.ExitCode, err
}
