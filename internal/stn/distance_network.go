package stn

import (
	"github.com/vk/stnsched/internal/event"
)

// DistanceNetwork is a read-only view of shortest distances between a chosen
// subset of events. Its edges carry the distance between every ordered pair
// of member events with a finite distance, self pairs included.
type DistanceNetwork struct {
	nodes []event.Event
	pos   map[event.Event]int
	dist  [][]float64
	fin   [][]bool
}

// Reduce projects the snapshot onto the origin, the horizon and the start
// events of all real tasks. It returns nil for an infeasible snapshot.
func Reduce(d Distances) *DistanceNetwork {
	nodes := []event.Event{event.Origin, event.Terminal}
	for t := 1; t <= d.numTasks; t++ {
		nodes = append(nodes, event.Start(t))
	}
	return project(d, nodes)
}

// Full projects the snapshot onto every event. It returns nil for an
// infeasible snapshot.
func Full(d Distances) *DistanceNetwork {
	nodes := make([]event.Event, 0, event.Count(d.numTasks))
	for i := 0; i < event.Count(d.numTasks); i++ {
		nodes = append(nodes, event.FromIndex(i))
	}
	return project(d, nodes)
}

func project(d Distances, nodes []event.Event) *DistanceNetwork {
	if !d.Feasible() {
		return nil
	}
	dn := &DistanceNetwork{
		nodes: nodes,
		pos:   make(map[event.Event]int, len(nodes)),
		dist:  make([][]float64, len(nodes)),
		fin:   make([][]bool, len(nodes)),
	}
	for i, u := range nodes {
		dn.pos[u] = i
		dn.dist[i] = make([]float64, len(nodes))
		dn.fin[i] = make([]bool, len(nodes))
		for j, v := range nodes {
			dn.dist[i][j], dn.fin[i][j] = d.Between(u, v)
		}
	}
	return dn
}

// Nodes returns the member events in a stable order.
func (dn *DistanceNetwork) Nodes() []event.Event {
	out := make([]event.Event, len(dn.nodes))
	copy(out, dn.nodes)
	return out
}

// Has reports whether e is a member event.
func (dn *DistanceNetwork) Has(e event.Event) bool {
	_, ok := dn.pos[e]
	return ok
}

// Distance returns the shortest distance between two member events.
func (dn *DistanceNetwork) Distance(from, to event.Event) (float64, bool) {
	i, ok := dn.pos[from]
	if !ok {
		return 0, false
	}
	j, ok := dn.pos[to]
	if !ok {
		return 0, false
	}
	return dn.dist[i][j], dn.fin[i][j]
}

// Edges lists every finite ordered pair as a constraint.
func (dn *DistanceNetwork) Edges() []Constraint {
	var out []Constraint
	for i, u := range dn.nodes {
		for j, v := range dn.nodes {
			if dn.fin[i][j] {
				out = append(out, Constraint{From: u, To: v, Weight: dn.dist[i][j]})
			}
		}
	}
	return out
}

// EarliestStart returns -d(s_task, s000) when the start event is a member.
func (dn *DistanceNetwork) EarliestStart(task int) (float64, bool) {
	w, ok := dn.Distance(event.Start(task), event.Origin)
	return -w, ok
}

// EarliestFinish returns -d(f_task, s000) when the finish event is a member.
func (dn *DistanceNetwork) EarliestFinish(task int) (float64, bool) {
	w, ok := dn.Distance(event.Finish(task), event.Origin)
	return -w, ok
}
