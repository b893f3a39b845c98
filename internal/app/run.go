package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/env"
	"github.com/vk/stnsched/internal/replay"
	"github.com/vk/stnsched/internal/scheduler"
	"gopkg.in/yaml.v3"
)

// Run drives every loaded instance through one episode in the configured
// mode, logs a summary per instance and writes the trace when requested.
// An instance whose initial network is infeasible is reported, not fatal.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode, "instances", len(a.instances))

	a.reports = a.reports[:0]
	for _, inst := range a.instances {
		if err := ctx.Err(); err != nil {
			return err
		}
		report, err := a.runInstance(ctx, inst)
		if err != nil {
			return fmt.Errorf("instance %q: %w", inst.Name, err)
		}
		a.reports = append(a.reports, report)

		a.logger.Info("Instance finished.",
			"instance", report.Instance,
			"mode", report.Mode,
			"feasible", report.Feasible,
			"done", report.Done,
			"makespan", report.Makespan,
			"steps", len(report.Steps),
		)
	}

	if a.config.TracePath != "" {
		if err := a.writeTrace(); err != nil {
			return err
		}
		a.logger.Info("Trace written.", "path", a.config.TracePath, "documents", len(a.reports))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runInstance(ctx context.Context, inst *config.Instance) (Report, error) {
	report := Report{Instance: inst.Name, Source: inst.Source, Mode: a.config.Mode}

	e, err := env.New(ctx, inst, a.config.EnvOptions())
	if errors.Is(err, env.ErrInfeasibleInstance) {
		a.logger.Warn("Initial network is infeasible.", "instance", inst.Name)
		report.Error = err.Error()
		return report, nil
	}
	if err != nil {
		return report, err
	}
	report.InitialMakespan = e.InitialMakespan()

	switch a.config.Mode {
	case ModeReplay:
		if inst.Solution == nil {
			a.logger.Warn("No expert solution to replay.", "instance", inst.Name)
			report.Error = "no expert solution"
			return report, nil
		}
		ts, err := replay.Run(ctx, e, inst.Solution, a.config.Gamma)
		if err != nil {
			return report, err
		}
		report.Steps = fromTransitions(ts)
	default:
		policy := a.config.Policy()
		report.Policy = policy.String()
		res, err := scheduler.Rollout(ctx, e, policy)
		if err != nil {
			return report, err
		}
		report.Steps = fromSteps(res.Steps)
		report.Schedules = res.Schedules
	}

	report.Feasible = e.Status() != env.StatusFailure
	report.Done = e.Done()
	report.Makespan = e.Makespan()
	report.Sequences = e.Sequences()
	if rn := e.Reduced(); rn != nil {
		report.Network = rn.Edges()
	}
	report.sumRewards()
	return report, nil
}

// writeTrace encodes every report as its own YAML document.
func (a *App) writeTrace() error {
	f, err := os.Create(a.config.TracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	for _, r := range a.reports {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode trace for %q: %w", r.Instance, err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush trace: %w", err)
	}
	return nil
}
