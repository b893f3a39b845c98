package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Instances []*instanceBlock `hcl:"instance,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type instanceBlock struct {
	Name      string           `hcl:"name,label"`
	Durations hcl.Expression   `hcl:"durations"`
	Locations hcl.Expression   `hcl:"locations,optional"`
	Deadlines []*deadlineBlock `hcl:"deadline,block"`
	Waits     []*waitBlock     `hcl:"wait,block"`
	Solution  *solutionBlock   `hcl:"solution,block"`
}

type deadlineBlock struct {
	Task  int `hcl:"task"`
	Bound int `hcl:"bound"`
}

type waitBlock struct {
	Task  int `hcl:"task"`
	After int `hcl:"after"`
	Gap   int `hcl:"gap"`
}

type solutionBlock struct {
	Robots hcl.Expression `hcl:"robots"`
	Order  hcl.Expression `hcl:"order"`
}
