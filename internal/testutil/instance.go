package testutil

import "github.com/vk/stnsched/internal/config"

// InstanceBuilder assembles config.Instance values for tests.
type InstanceBuilder struct {
	inst config.Instance
}

// NewInstance starts an instance with the given duration matrix. Tasks are
// placed on a diagonal far enough apart that no proximity rule applies.
func NewInstance(name string, durations ...[]int) *InstanceBuilder {
	b := &InstanceBuilder{inst: config.Instance{Name: name, Durations: durations}}
	for i := range durations {
		b.inst.Locations = append(b.inst.Locations, config.Location{X: 10 * i, Y: 10 * i})
	}
	return b
}

// Deadline adds a deadline on task.
func (b *InstanceBuilder) Deadline(task, bound int) *InstanceBuilder {
	b.inst.Deadlines = append(b.inst.Deadlines, config.Deadline{Task: task, Bound: bound})
	return b
}

// Wait makes task start at least gap after after finishes.
func (b *InstanceBuilder) Wait(task, after, gap int) *InstanceBuilder {
	b.inst.Waits = append(b.inst.Waits, config.Wait{Task: task, After: after, Gap: gap})
	return b
}

// At moves task to a grid cell.
func (b *InstanceBuilder) At(task, x, y int) *InstanceBuilder {
	b.inst.Locations[task-1] = config.Location{X: x, Y: y}
	return b
}

// Solution attaches an expert solution.
func (b *InstanceBuilder) Solution(order []int, robots ...[]int) *InstanceBuilder {
	b.inst.Solution = &config.Solution{Robots: robots, Order: order}
	return b
}

// Build returns a copy of the assembled instance.
func (b *InstanceBuilder) Build() *config.Instance {
	inst := b.inst
	return &inst
}
