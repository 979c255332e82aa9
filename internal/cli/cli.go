package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/specialistvlad/cleago/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes the launcher's own flags. Everything after the first
// non-flag argument (or after `--`) is returned untouched as the argument
// vector of the manifest-defined program. The boolean reports whether the
// program should exit cleanly without running anything.
func Parse(args []string, output io.Writer) (*app.Config, []string, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("clea", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SetInterspersed(false)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
clea - runs a command line program declared in HCL manifests.

Usage:
  clea [options] [--] [ARGS...]

Arguments:
  ARGS
    Passed to the program declared by the manifests. Use -- before ARGS
    that start with a dash, e.g. clea -m cli.hcl -- --help

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.StringArrayP("manifest", "m", nil, "Path to a .hcl manifest or a directory of them. Repeatable.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	isolatedFlag := flagSet.Bool("isolated", false, "Capture program output and report every failure as exit code 1.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, nil, true, nil
		}
		return nil, nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if len(*manifestFlag) == 0 {
		slog.Debug("No manifest provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ManifestPaths: *manifestFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		Isolated:      *isolatedFlag,
	})
	if err != nil {
		return nil, nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	rest := flagSet.Args()
	slog.Debug("CLI parser finished successfully.", "config", config, "argc", len(rest))
	return config, rest, false, nil
}
