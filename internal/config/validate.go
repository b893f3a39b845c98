package config

import "fmt"

// Validate checks the instance for structural problems. It returns a
// *ValidationErrors listing every finding, or nil.
func (i *Instance) Validate() error {
	ve := &ValidationErrors{Instance: i.Name}

	n := i.NumTasks()
	if n == 0 {
		ve.Add("durations", "at least one task is required")
		return ve
	}
	m := i.NumRobots()
	if m == 0 {
		ve.Add("durations", "at least one robot is required")
		return ve
	}

	for t, row := range i.Durations {
		path := fmt.Sprintf("durations[%d]", t)
		if len(row) != m {
			ve.Addf(path, "expected %d robot durations, got %d", m, len(row))
			continue
		}
		for r, d := range row {
			if d <= 0 {
				ve.Addf(fmt.Sprintf("%s[%d]", path, r), "duration must be positive, got %d", d)
			}
		}
	}

	inRange := func(task int) bool { return task >= 1 && task <= n }

	for k, d := range i.Deadlines {
		if !inRange(d.Task) {
			ve.Addf(fmt.Sprintf("deadlines[%d].task", k), "task %d out of range 1..%d", d.Task, n)
		}
	}

	for k, w := range i.Waits {
		path := fmt.Sprintf("waits[%d]", k)
		if !inRange(w.Task) {
			ve.Addf(path+".task", "task %d out of range 1..%d", w.Task, n)
		}
		if !inRange(w.After) {
			ve.Addf(path+".after", "task %d out of range 1..%d", w.After, n)
		}
	}

	if len(i.Locations) != n {
		ve.Addf("locations", "expected %d locations, got %d", n, len(i.Locations))
	}

	if i.Solution != nil {
		i.Solution.validate(ve, n, m)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// validate checks that the solution covers every task exactly once.
func (s *Solution) validate(ve *ValidationErrors, numTasks, numRobots int) {
	if len(s.Robots) > numRobots {
		ve.Addf("solution.robots", "%d sequences for a team of %d", len(s.Robots), numRobots)
	}

	owner := make(map[int]int)
	for r, seq := range s.Robots {
		for k, t := range seq {
			path := fmt.Sprintf("solution.robots[%d][%d]", r, k)
			if t < 1 || t > numTasks {
				ve.Addf(path, "task %d out of range 1..%d", t, numTasks)
				continue
			}
			if prev, dup := owner[t]; dup {
				ve.Addf(path, "task %d already assigned to robot %d", t, prev)
				continue
			}
			owner[t] = r
		}
	}

	if len(s.Order) != numTasks {
		ve.Addf("solution.order", "expected %d tasks, got %d", numTasks, len(s.Order))
	}
	seen := make(map[int]bool)
	for k, t := range s.Order {
		path := fmt.Sprintf("solution.order[%d]", k)
		if seen[t] {
			ve.Addf(path, "task %d listed twice", t)
			continue
		}
		seen[t] = true
		if _, ok := owner[t]; !ok {
			ve.Addf(path, "task %d is not assigned to any robot", t)
		}
	}
}
