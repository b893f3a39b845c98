package scheduler

import (
	"context"
	"fmt"

	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/env"
)

// Result summarizes a rollout.
type Result struct {
	// Feasible is false once an insertion made the network infeasible.
	Feasible bool
	// Done is true when the episode reached a terminal state.
	Done      bool
	Makespan  float64
	Steps     []env.Step
	Schedules [][]Slot
}

// Rollout runs the EDF baseline over e. Time advances in unit steps from 0
// to the horizon; at each step free robots are offered tasks until none can
// take one. A robot whose what-if network is infeasible or yields no task
// that can start now sits out the rest of the time step.
func Rollout(ctx context.Context, e Environment, policy Policy) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	team := NewTeam(e.NumRobots())
	var steps []env.Step

	for at := 0.0; at <= e.Horizon() && !e.Done(); at++ {
		var exclude []int
		for !e.Done() {
			robot, ok, err := team.PickRobot(e, at, policy, exclude)
			if err != nil {
				return Result{}, err
			}
			if !ok {
				break
			}

			valid := e.ValidTasksAt(at)
			if len(valid) == 0 {
				break
			}

			dn, err := e.RobotNetwork(ctx, robot, valid)
			if err != nil {
				return Result{}, err
			}
			if dn == nil {
				logger.Debug("Robot network infeasible.", "robot", robot, "time", at)
				exclude = append(exclude, robot)
				continue
			}
			task, ok := PickTask(dn, valid, at)
			if !ok {
				exclude = append(exclude, robot)
				continue
			}

			step, err := e.Insert(ctx, task, robot)
			if err != nil {
				return Result{}, fmt.Errorf("rollout insert at time %g: %w", at, err)
			}
			dur, err := e.Duration(task, robot)
			if err != nil {
				return Result{}, err
			}
			team.Update(task, robot, float64(dur), at)
			steps = append(steps, step)
		}
	}

	res := Result{
		Feasible:  e.Status() != env.StatusFailure,
		Done:      e.Done(),
		Makespan:  e.Makespan(),
		Steps:     steps,
		Schedules: team.Schedules(),
	}
	logger.Debug("Rollout finished.",
		"policy", policy.String(), "steps", len(steps), "done", res.Done,
		"feasible", res.Feasible, "makespan", res.Makespan)
	return res, nil
}
