package env

import (
	"context"
	"fmt"

	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/johnson"
	"github.com/vk/stnsched/internal/partial"
	"github.com/vk/stnsched/internal/stn"
)

// Status is the lifecycle state of an episode.
type Status int

const (
	StatusActive Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Step is the outcome of one insertion.
type Step struct {
	Task     int
	Robot    int
	Feasible bool
	Reward   float64
	Makespan float64
	Done     bool
}

// Env is a single scheduling episode. It is not safe for concurrent use.
type Env struct {
	inst *config.Instance
	opts Options

	net     *stn.Network
	reduced *stn.DistanceNetwork
	sol     *partial.Solution

	horizon  float64
	penalty  float64
	initial  float64
	makespan float64
	status   Status
}

// New validates the instance, builds its initial network and solves it once.
// It returns ErrInfeasibleInstance if the constraints contradict each other
// before any task is placed.
func New(ctx context.Context, inst *config.Instance, opts Options) (*Env, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment options: %w", err)
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	n := float64(inst.NumTasks())
	e := &Env{
		inst:    inst,
		opts:    opts,
		sol:     partial.New(inst.NumTasks(), inst.NumRobots()),
		horizon: opts.HorizonPerTask * n,
		penalty: opts.PenaltyPerTask * n,
	}

	net, err := stn.Build(inst, e.horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to build network for instance %q: %w", inst.Name, err)
	}
	dist, err := net.Solve(ctx, e.solveOptions())
	if err != nil {
		return nil, err
	}
	if !dist.Feasible() {
		return nil, fmt.Errorf("instance %q: %w", inst.Name, ErrInfeasibleInstance)
	}

	e.net = net
	e.reduced = stn.Reduce(dist)
	e.initial = e.makespanOf(dist)
	e.makespan = e.initial

	ctxlog.FromContext(ctx).Debug("Environment initialized.",
		"instance", inst.Name, "tasks", inst.NumTasks(), "robots", inst.NumRobots(),
		"horizon", e.horizon)
	return e, nil
}

// Insert commits task to the end of robot's sequence. Calling it after the
// episode ended returns ErrEpisodeDone. Invalid arguments return a
// *ValidationError. Neither changes the episode. An infeasible result is
// reported through Step and ends the episode.
func (e *Env) Insert(ctx context.Context, task, robot int) (Step, error) {
	if e.status != StatusActive {
		return Step{}, fmt.Errorf("%w: status %s", ErrEpisodeDone, e.status)
	}
	if robot < 0 || robot >= e.inst.NumRobots() {
		return Step{}, &ValidationError{Field: "robot", Value: robot, Err: ErrInvalidRobot}
	}
	if task < 1 || task > e.inst.NumTasks() {
		return Step{}, &ValidationError{Field: "task", Value: task, Err: ErrInvalidTask}
	}
	if e.sol.IsCommitted(task) {
		return Step{}, &ValidationError{Field: "task", Value: task, Err: ErrTaskCommitted}
	}

	pending := make([]int, 0, e.inst.NumTasks())
	for _, k := range e.sol.Unscheduled() {
		if k != task {
			pending = append(pending, k)
		}
	}

	next := e.net.Clone()
	err := next.Commit(stn.Commitment{
		Task:     task,
		After:    e.sol.Last(robot),
		Duration: float64(e.inst.Durations[task-1][robot]),
		Pending:  pending,
		Nearby:   e.nearby(task, pending),
	})
	if err != nil {
		return Step{}, fmt.Errorf("failed to commit task %d to robot %d: %w", task, robot, err)
	}

	dist, err := next.Solve(ctx, e.solveOptions())
	if err != nil {
		return Step{}, err
	}

	if err := e.sol.Commit(task, robot); err != nil {
		return Step{}, err
	}
	e.net = next

	step := Step{Task: task, Robot: robot, Feasible: dist.Feasible()}
	prev := e.makespan
	switch {
	case !step.Feasible:
		step.Reward = -(e.penalty - prev/e.opts.Discount)
		e.makespan = e.penalty
		e.status = StatusFailure
	case e.sol.Complete():
		e.makespan = e.makespanOf(dist)
		step.Reward = -(e.makespan - prev/e.opts.Discount)
		e.status = StatusSuccess
	default:
		e.makespan = e.makespanOf(dist)
		step.Reward = -(e.makespan - prev) / e.opts.Discount
	}
	if step.Feasible {
		e.reduced = stn.Reduce(dist)
	}
	step.Makespan = e.makespan
	step.Done = e.status != StatusActive

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Task inserted.",
		"task", task, "robot", robot, "feasible", step.Feasible,
		"reward", step.Reward, "makespan", step.Makespan)
	if !step.Feasible {
		logger.Info("Insertion made the network infeasible.",
			"instance", e.inst.Name, "task", task, "robot", robot,
			"committed", e.sol.Count())
	}
	return step, nil
}

// makespanOf returns the latest earliest-finish time over committed tasks,
// or 0 when only the sentinel is committed.
func (e *Env) makespanOf(dist stn.Distances) float64 {
	var z float64
	for _, t := range e.sol.Committed() {
		if ef := dist.EarliestFinish(t); ef > z {
			z = ef
		}
	}
	return z
}

// nearby filters candidates to those within the proximity threshold of task.
func (e *Env) nearby(task int, candidates []int) []int {
	var out []int
	a := e.inst.Locations[task-1]
	limit := e.opts.Proximity * e.opts.Proximity
	for _, k := range candidates {
		b := e.inst.Locations[k-1]
		dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
		if dx*dx+dy*dy <= limit {
			out = append(out, k)
		}
	}
	return out
}

func (e *Env) solveOptions() johnson.Options {
	return johnson.Options{Workers: e.opts.Workers}
}
