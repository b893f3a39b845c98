package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/stnsched/internal/app"
	"github.com/vk/stnsched/internal/cli"
	"github.com/vk/stnsched/internal/hcl_adapter"
	"github.com/vk/stnsched/internal/tables"
	"github.com/vk/stnsched/internal/yaml_adapter"
)

// main is the entrypoint for the stnsched application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on fatal startup errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	stnApp := app.NewApp(outW, appConfig,
		hcl_adapter.NewLoader(),
		yaml_adapter.NewLoader(),
		tables.NewLoader(appConfig.SolutionDir),
	)
	return stnApp.Run(context.Background())
}
