// Package partial tracks the committed part of a schedule: one task sequence
// per robot and the global order in which tasks were committed.
package partial

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel is the placeholder task every robot sequence starts with.
const Sentinel = 0

var (
	// ErrCommitted is returned when a task is committed a second time.
	ErrCommitted = errors.New("task already committed")
	// ErrOutOfRange is returned for unknown task or robot indices.
	ErrOutOfRange = errors.New("index out of range")
)

// Solution is a partial assignment of tasks to robots.
type Solution struct {
	numTasks int
	robots   [][]int
	merged   []int
	owner    map[int]int
}

// New returns an empty partial solution for numTasks tasks and numRobots
// robots. Each robot sequence and the merged order hold only the sentinel.
func New(numTasks, numRobots int) *Solution {
	s := &Solution{
		numTasks: numTasks,
		robots:   make([][]int, numRobots),
		merged:   []int{Sentinel},
		owner:    make(map[int]int),
	}
	for r := range s.robots {
		s.robots[r] = []int{Sentinel}
	}
	return s
}

// Commit appends task to robot's sequence and to the merged order.
func (s *Solution) Commit(task, robot int) error {
	if robot < 0 || robot >= len(s.robots) {
		return fmt.Errorf("%w: robot %d not in 0..%d", ErrOutOfRange, robot, len(s.robots)-1)
	}
	if task < 1 || task > s.numTasks {
		return fmt.Errorf("%w: task %d not in 1..%d", ErrOutOfRange, task, s.numTasks)
	}
	if r, ok := s.owner[task]; ok {
		return fmt.Errorf("%w: task %d is on robot %d", ErrCommitted, task, r)
	}
	s.robots[robot] = append(s.robots[robot], task)
	s.merged = append(s.merged, task)
	s.owner[task] = robot
	return nil
}

// NumTasks returns the number of real tasks.
func (s *Solution) NumTasks() int {
	return s.numTasks
}

// NumRobots returns the team size.
func (s *Solution) NumRobots() int {
	return len(s.robots)
}

// Last returns the most recent task on robot, or the sentinel.
func (s *Solution) Last(robot int) int {
	seq := s.robots[robot]
	return seq[len(seq)-1]
}

// Owner reports which robot a task was committed to.
func (s *Solution) Owner(task int) (int, bool) {
	r, ok := s.owner[task]
	return r, ok
}

// IsCommitted reports whether task has been placed on a robot.
func (s *Solution) IsCommitted(task int) bool {
	_, ok := s.owner[task]
	return ok
}

// Count returns the number of committed real tasks.
func (s *Solution) Count() int {
	return len(s.owner)
}

// Complete reports whether every task has been committed.
func (s *Solution) Complete() bool {
	return len(s.owner) == s.numTasks
}

// Robot returns a copy of robot's sequence, sentinel first.
func (s *Solution) Robot(robot int) []int {
	return slices.Clone(s.robots[robot])
}

// Robots returns a copy of every robot sequence.
func (s *Solution) Robots() [][]int {
	out := make([][]int, len(s.robots))
	for r, seq := range s.robots {
		out[r] = slices.Clone(seq)
	}
	return out
}

// Merged returns a copy of the commitment order, sentinel first.
func (s *Solution) Merged() []int {
	return slices.Clone(s.merged)
}

// Committed returns the committed real tasks in commitment order.
func (s *Solution) Committed() []int {
	return slices.Clone(s.merged[1:])
}

// Unscheduled returns the tasks not yet committed, in ascending order.
func (s *Solution) Unscheduled() []int {
	out := make([]int, 0, s.numTasks-len(s.owner))
	for t := 1; t <= s.numTasks; t++ {
		if _, ok := s.owner[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
