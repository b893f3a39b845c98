package scheduler

import (
	"context"

	"github.com/vk/stnsched/internal/env"
	"github.com/vk/stnsched/internal/stn"
)

// Environment is the view of an episode the heuristics need. *env.Env
// satisfies it.
type Environment interface {
	NumRobots() int
	Horizon() float64
	UnscheduledTasks() []int
	ValidTasksAt(t float64) []int
	Duration(task, robot int) (int, error)
	DurationsOn(robot int, tasks []int) ([]int, error)
	RobotNetwork(ctx context.Context, robot int, tasks []int) (*stn.DistanceNetwork, error)
	Insert(ctx context.Context, task, robot int) (env.Step, error)
	Status() env.Status
	Done() bool
	Makespan() float64
}

var _ Environment = (*env.Env)(nil)
