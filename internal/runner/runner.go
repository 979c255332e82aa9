package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/parser"
)

// Options controls a single Run.
type Options struct {
	// Isolated captures output into the Result and converts every failure,
	// panics included, into exit code 1.
	Isolated bool
	// Stdout and Stderr receive output in non-isolated mode. They default to
	// the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Result is the outcome of a Run. Stdout and Stderr are only populated in
// isolated mode.
type Result struct {
	ExitCode     int
	Stdout       string
	Stderr       string
	InvocationID string
}

// Run invokes cli with argv. In isolated mode it never returns an error.
func Run(ctx context.Context, cli command.Executable, argv []string, opts Options) (*Result, error) {
	id := uuid.NewString()
	ctx, logger := ctxlog.With(ctx, "invocation_id", id)
	logger.Debug("Run started.", "cli", cli.Name(), "argc", len(argv), "isolated", opts.Isolated)

	if !opts.Isolated {
		inv := command.Invocation{Stdout: opts.Stdout, Stderr: opts.Stderr}
		if inv.Stdout == nil {
			inv.Stdout = os.Stdout
		}
		if inv.Stderr == nil {
			inv.Stderr = os.Stderr
		}
		code, err := cli.Invoke(ctx, inv, argv)
		logger.Debug("Run finished.", "exit_code", code, "error", err)
		return &Result{ExitCode: code, InvocationID: id}, err
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	inv := command.Invocation{Stdout: stdout, Stderr: stderr, Isolated: true}
	code, err := invokeRecovered(ctx, cli, inv, argv)
	if err != nil {
		logger.Debug("Run failed.", "error", err, "usage_error", IsUsageError(err))
		command.ReportError(stderr, err)
		code = 1
	}
	logger.Debug("Run finished.", "exit_code", code)
	return &Result{
		ExitCode:     code,
		Stdout:       stdout.String(),
		Stderr:       stderr.String(),
		InvocationID: id,
	}, nil
}

func invokeRecovered(ctx context.Context, cli command.Executable, inv command.Invocation, argv []string) (code int, err error) {
	defer func() {
		if r := recover(); r != nil {
			code, err = 1, fmt.Errorf("panic: %v", r)
		}
	}()
	return cli.Invoke(ctx, inv, argv)
}

// IsUsageError reports whether err was caused by the argument vector rather
// than by a handler.
func IsUsageError(err error) bool {
	return parser.IsUsageError(err)
}
