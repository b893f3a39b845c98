package yaml_adapter

import (
	"fmt"

	"github.com/vk/stnsched/internal/config"
	"gopkg.in/yaml.v3"
)

type document struct {
	Name      string     `yaml:"name"`
	Durations [][]int    `yaml:"durations"`
	Deadlines []deadline `yaml:"deadlines"`
	Waits     []wait     `yaml:"waits"`
	Locations []location `yaml:"locations"`
	Solution  *solution  `yaml:"solution"`
}

type deadline struct {
	Task  int `yaml:"task"`
	Bound int `yaml:"bound"`
}

type wait struct {
	Task  int `yaml:"task"`
	After int `yaml:"after"`
	Gap   int `yaml:"gap"`
}

type solution struct {
	Robots [][]int `yaml:"robots"`
	Order  []int   `yaml:"order"`
}

// location accepts either a [x, y] pair or an {x: .., y: ..} mapping.
type location struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (l *location) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: location must be [x, y], got %d values", node.Line, len(pair))
		}
		l.X, l.Y = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		type plain location
		return node.Decode((*plain)(l))
	}
	return fmt.Errorf("line %d: location must be a sequence or mapping", node.Line)
}

func (d *document) toInstance(source string) *config.Instance {
	inst := &config.Instance{
		Name:      d.Name,
		Source:    source,
		Durations: d.Durations,
	}
	for _, v := range d.Deadlines {
		inst.Deadlines = append(inst.Deadlines, config.Deadline{Task: v.Task, Bound: v.Bound})
	}
	for _, v := range d.Waits {
		inst.Waits = append(inst.Waits, config.Wait{Task: v.Task, After: v.After, Gap: v.Gap})
	}
	for _, v := range d.Locations {
		inst.Locations = append(inst.Locations, config.Location{X: v.X, Y: v.Y})
	}
	if d.Solution != nil {
		inst.Solution = &config.Solution{Robots: d.Solution.Robots, Order: d.Solution.Order}
	}
	return inst
}
