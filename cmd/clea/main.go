package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/cleago/internal/app"
	"github.com/specialistvlad/cleago/internal/cli"
	"github.com/specialistvlad/cleago/internal/hcl"
)

// main is the entrypoint for the clea launcher.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the launcher logic for easier testing. A non-zero exit
// code from the program comes back as an ExitError without a message, since
// the program has already reported the failure itself.
func run(outW, errW io.Writer, args []string) error {
	appConfig, argv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cleaApp, err := newApp(outW, errW, appConfig)
	if err != nil {
		return err
	}

	code, err := cleaApp.Run(context.Background(), argv)
	if err != nil {
		return err
	}
	if code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}

// newApp builds the app. It panics on manifest errors, so we recover here to
// provide a clean exit message to the user. Panics raised later by handlers
// are not startup errors and are left alone.
func newApp(outW, errW io.Writer, cfg *app.Config) (a *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()
	return app.NewApp(outW, errW, cfg, hcl.NewLoader(nil)), nil
}
