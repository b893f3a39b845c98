package config

// Instance is one scheduling problem: a team of robots, a set of tasks, and
// the temporal and spatial constraints between them. Tasks are numbered from
// 1; robots from 0.
type Instance struct {
	// Name identifies the instance in logs and traces.
	Name string
	// Source is the file (or file prefix) the instance was read from.
	Source string
	// Durations[i][r] is the time robot r needs for task i+1.
	Durations [][]int
	Deadlines []Deadline
	Waits     []Wait
	// Locations[i] is the grid cell of task i+1.
	Locations []Location
	// Solution is an optional expert schedule used for demonstration replay.
	Solution *Solution
}

// Deadline requires Task to finish no later than Bound.
type Deadline struct {
	Task  int
	Bound int
}

// Wait requires Task to start at least Gap time units after After finishes.
type Wait struct {
	Task  int
	After int
	Gap   int
}

// Location is a 2D integer grid coordinate.
type Location struct {
	X int
	Y int
}

// Solution is a complete assignment: each robot's task sequence and the
// global order in which the tasks were committed.
type Solution struct {
	Robots [][]int
	Order  []int
}

// NumTasks returns the number of real tasks (excluding the sentinel 0).
func (i *Instance) NumTasks() int {
	return len(i.Durations)
}

// NumRobots returns the team size.
func (i *Instance) NumRobots() int {
	if len(i.Durations) == 0 {
		return 0
	}
	return len(i.Durations[0])
}

// DurationRange returns the smallest and largest duration of a task across
// all robots.
func (i *Instance) DurationRange(task int) (lo, hi int) {
	row := i.Durations[task-1]
	lo, hi = row[0], row[0]
	for _, d := range row[1:] {
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// RobotOf returns the robot whose solution sequence contains task.
func (s *Solution) RobotOf(task int) (int, bool) {
	for r, seq := range s.Robots {
		for _, t := range seq {
			if t == task {
				return r, true
			}
		}
	}
	return 0, false
}
