// Package replay drives an expert solution through an environment and
// turns the resulting rewards into discounted returns.
package replay

import (
	"context"
	"fmt"

	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/env"
)

// Inserter is the part of an environment replay needs.
type Inserter interface {
	Insert(ctx context.Context, task, robot int) (env.Step, error)
}

// Transition is one replayed insertion.
type Transition struct {
	Step     int     `yaml:"step"`
	Task     int     `yaml:"task"`
	Robot    int     `yaml:"robot"`
	Reward   float64 `yaml:"reward"`
	Return   float64 `yaml:"return"`
	Feasible bool    `yaml:"feasible"`
	Done     bool    `yaml:"done"`
	Makespan float64 `yaml:"makespan"`
}

// Run inserts the solution's tasks in merged order, each on the robot whose
// sequence holds it, and stops after the first infeasible step. Each
// transition's Return is the sum of gamma^(j-t) * reward_j over the
// remaining steps j >= t.
func Run(ctx context.Context, e Inserter, sol *config.Solution, gamma float64) ([]Transition, error) {
	if gamma < 0 || gamma > 1 {
		return nil, fmt.Errorf("discount factor must be in [0, 1], got %g", gamma)
	}

	out := make([]Transition, 0, len(sol.Order))
	for i, task := range sol.Order {
		robot, ok := sol.RobotOf(task)
		if !ok {
			return nil, fmt.Errorf("%w: task %d of the order is on no robot", config.ErrMalformedInstance, task)
		}
		step, err := e.Insert(ctx, task, robot)
		if err != nil {
			return nil, fmt.Errorf("replay step %d: %w", i, err)
		}
		out = append(out, Transition{
			Step:     i,
			Task:     task,
			Robot:    robot,
			Reward:   step.Reward,
			Feasible: step.Feasible,
			Done:     step.Done,
			Makespan: step.Makespan,
		})
		if !step.Feasible {
			break
		}
	}

	var ret float64
	for i := len(out) - 1; i >= 0; i-- {
		ret = out[i].Reward + gamma*ret
		out[i].Return = ret
	}

	ctxlog.FromContext(ctx).Debug("Solution replayed.", "steps", len(out), "gamma", gamma)
	return out, nil
}
