package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	instances []*config.Instance
	reports   []Report
}

// NewApp is the constructor for the main application. It builds an isolated
// logger, runs every loader over the instance path and validates the
// result. A loading or validation failure is a fatal startup error and
// panics; the entrypoint recovers it.
func NewApp(outW io.Writer, appConfig *Config, loaders ...config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var instances []*config.Instance
	for _, loader := range loaders {
		found, err := loader.Load(ctx, appConfig.InstancePath)
		if err != nil {
			panic(fmt.Errorf("failed to load instances: %w", err))
		}
		instances = append(instances, found...)
	}
	if len(instances) == 0 {
		panic(fmt.Errorf("no instances found under %s", appConfig.InstancePath))
	}
	logger.Debug("Instances loaded.", "count", len(instances))

	for _, inst := range instances {
		if err := inst.Validate(); err != nil {
			panic(fmt.Errorf("%s: %w", inst.Source, err))
		}
	}
	logger.Debug("Instance validation passed.")

	return &App{
		outW:      outW,
		logger:    logger,
		config:    appConfig,
		instances: instances,
	}
}

// Instances returns the loaded instances. This is primarily for testing.
func (a *App) Instances() []*config.Instance {
	return a.instances
}

// Reports returns the outcome of the last Run, one per instance.
func (a *App) Reports() []Report {
	return a.reports
}
