package scheduler

import (
	"slices"
)

// Slot is one task on a robot's timeline.
type Slot struct {
	Task  int     `yaml:"task"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Robot tracks a robot's timeline and when it is next free.
type Robot struct {
	ID            int
	Schedule      []Slot
	NextAvailable float64
}

// Team is the set of robots driven by the heuristics.
type Team struct {
	robots []*Robot
}

// NewTeam returns n idle robots with ids 0..n-1.
func NewTeam(n int) *Team {
	t := &Team{robots: make([]*Robot, n)}
	for i := range t.robots {
		t.robots[i] = &Robot{ID: i}
	}
	return t
}

// Robot returns the robot with the given id.
func (t *Team) Robot(id int) *Robot {
	return t.robots[id]
}

// Available returns the ids of robots free at the time point, ascending.
func (t *Team) Available(at float64) []int {
	var out []int
	for _, r := range t.robots {
		if r.NextAvailable <= at {
			out = append(out, r.ID)
		}
	}
	return out
}

// Update records that robot started task at the time point and is busy for
// duration.
func (t *Team) Update(task, robot int, duration, at float64) {
	r := t.robots[robot]
	r.Schedule = append(r.Schedule, Slot{Task: task, Start: at, End: at + duration})
	r.NextAvailable = at + duration
}

// Schedules returns a copy of every robot's timeline.
func (t *Team) Schedules() [][]Slot {
	out := make([][]Slot, len(t.robots))
	for i, r := range t.robots {
		out[i] = slices.Clone(r.Schedule)
	}
	return out
}
