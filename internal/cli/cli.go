package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/stnsched/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("stnsched", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stnsched - temporal-network task scheduling for robot teams.

Usage:
  stnsched [options] [INSTANCE_PATH]

Arguments:
  INSTANCE_PATH
    Path to an instance file (.hcl, .yaml, <prefix>_dur.txt) or a directory of them.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := app.DefaultConfig()
	instanceFlag := flagSet.String("instance", "", "Path to the instance file or directory.")
	iFlag := flagSet.String("i", "", "Path to the instance file or directory (shorthand).")
	solutionsFlag := flagSet.String("solutions", "", "Directory with expert solutions for table instances.")
	modeFlag := flagSet.String("mode", def.Mode, "Run mode. Options: 'edf' or 'replay'.")
	policyFlag := flagSet.String("robot-policy", def.RobotPolicy, "Robot selection for edf. Options: 'average', 'min' or 'valid'.")
	proximityFlag := flagSet.Float64("proximity", def.Proximity, "Distance under which two tasks must not overlap.")
	discountFlag := flagSet.Float64("discount", def.Discount, "Reward discount constant applied to the previous makespan.")
	penaltyFlag := flagSet.Float64("penalty-per-task", def.PenaltyPerTask, "Infeasibility makespan per task.")
	horizonFlag := flagSet.Float64("horizon-per-task", def.HorizonPerTask, "Schedule horizon per task.")
	gammaFlag := flagSet.Float64("gamma", def.Gamma, "Discount factor for replay returns.")
	workersFlag := flagSet.Int("workers", def.Workers, "Concurrent shortest-path passes per solve.")
	traceFlag := flagSet.String("trace", "", "Write a YAML trace of every episode to this file.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *instanceFlag != "" {
		path = *instanceFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Instance path determined.", "path", path)

	if path == "" {
		slog.Debug("No instance path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := app.ParseLevel(logLevel); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InstancePath:   path,
		SolutionDir:    *solutionsFlag,
		Mode:           strings.ToLower(*modeFlag),
		RobotPolicy:    strings.ToLower(*policyFlag),
		Proximity:      *proximityFlag,
		Discount:       *discountFlag,
		PenaltyPerTask: *penaltyFlag,
		HorizonPerTask: *horizonFlag,
		Gamma:          *gammaFlag,
		Workers:        *workersFlag,
		TracePath:      *traceFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
