package env

import (
	"context"

	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/stn"
)

// Instance returns the problem the episode runs on.
func (e *Env) Instance() *config.Instance { return e.inst }

// NumTasks returns the number of real tasks.
func (e *Env) NumTasks() int { return e.inst.NumTasks() }

// NumRobots returns the team size.
func (e *Env) NumRobots() int { return e.inst.NumRobots() }

// Status returns the lifecycle state.
func (e *Env) Status() Status { return e.status }

// Done reports whether the episode has ended.
func (e *Env) Done() bool { return e.status != StatusActive }

// Makespan returns the current makespan estimate. After an infeasible
// insertion it is the penalty M.
func (e *Env) Makespan() float64 { return e.makespan }

// InitialMakespan returns the makespan estimate before any insertion.
func (e *Env) InitialMakespan() float64 { return e.initial }

// Horizon returns the origin to terminal bound.
func (e *Env) Horizon() float64 { return e.horizon }

// Sequences returns each robot's committed tasks, sentinel first.
func (e *Env) Sequences() [][]int { return e.sol.Robots() }

// Merged returns every committed task in commitment order, sentinel first.
func (e *Env) Merged() []int { return e.sol.Merged() }

// UnscheduledTasks returns the tasks not yet committed, ascending. It is
// also the set of legal actions.
func (e *Env) UnscheduledTasks() []int { return e.sol.Unscheduled() }

// Constraints returns the current edges of the canonical network.
func (e *Env) Constraints() []stn.Constraint { return e.net.Constraints() }

// Reduced returns the reduced distance network of the last feasible solve.
func (e *Env) Reduced() *stn.DistanceNetwork { return e.reduced }

// ValidTasksAt returns the unscheduled tasks whose earliest start is no
// later than t, according to the last feasible solve.
func (e *Env) ValidTasksAt(t float64) []int {
	var out []int
	for _, k := range e.sol.Unscheduled() {
		es, ok := e.reduced.EarliestStart(k)
		if ok && es <= t {
			out = append(out, k)
		}
	}
	return out
}

// Duration returns robot's time for task.
func (e *Env) Duration(task, robot int) (int, error) {
	if err := e.checkRobot(robot); err != nil {
		return 0, err
	}
	if err := e.checkTask(task); err != nil {
		return 0, err
	}
	return e.inst.Durations[task-1][robot], nil
}

// DurationsOn returns robot's time for each of tasks, in order.
func (e *Env) DurationsOn(robot int, tasks []int) ([]int, error) {
	if err := e.checkRobot(robot); err != nil {
		return nil, err
	}
	out := make([]int, len(tasks))
	for i, t := range tasks {
		if err := e.checkTask(t); err != nil {
			return nil, err
		}
		out[i] = e.inst.Durations[t-1][robot]
	}
	return out, nil
}

// RobotNetwork evaluates robot taking over tasks without committing anything:
// a copy of the canonical network has those tasks' durations pinned to the
// robot's and is solved on its own. It returns nil when the copy is
// infeasible.
func (e *Env) RobotNetwork(ctx context.Context, robot int, tasks []int) (*stn.DistanceNetwork, error) {
	if err := e.checkRobot(robot); err != nil {
		return nil, err
	}
	durations := make(map[int]float64, len(tasks))
	for _, t := range tasks {
		if err := e.checkTask(t); err != nil {
			return nil, err
		}
		durations[t] = float64(e.inst.Durations[t-1][robot])
	}

	what, err := e.net.WithDurations(durations)
	if err != nil {
		return nil, err
	}
	dist, err := what.Solve(ctx, e.solveOptions())
	if err != nil {
		return nil, err
	}
	return stn.Full(dist), nil
}

func (e *Env) checkRobot(robot int) error {
	if robot < 0 || robot >= e.inst.NumRobots() {
		return &ValidationError{Field: "robot", Value: robot, Err: ErrInvalidRobot}
	}
	return nil
}

func (e *Env) checkTask(task int) error {
	if task < 1 || task > e.inst.NumTasks() {
		return &ValidationError{Field: "task", Value: task, Err: ErrInvalidTask}
	}
	return nil
}
