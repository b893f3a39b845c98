// internal/event/types.go
package event

// Kind distinguishes the two events a task owns.
type Kind int

const (
	KindStart  Kind = iota // Task begins.
	KindFinish             // Task ends.
)

func (k Kind) String() string {
	return [...]string{"start", "finish"}[k]
}

// letter is the single-character prefix used in canonical names.
func (k Kind) letter() byte {
	return "sf"[k]
}

// Event identifies one time point in the network.
type Event struct {
	Task int
	Kind Kind
}

// Origin is the start of task 0, the reference point of all absolute times.
var Origin = Event{Task: 0, Kind: KindStart}

// Terminal is the finish of task 0, which every task finish precedes.
var Terminal = Event{Task: 0, Kind: KindFinish}

// Start returns the start event of a task.
func Start(task int) Event {
	return Event{Task: task, Kind: KindStart}
}

// Finish returns the finish event of a task.
func Finish(task int) Event {
	return Event{Task: task, Kind: KindFinish}
}

// Index returns the dense node index of the event.
func (e Event) Index() int {
	return 2*e.Task + int(e.Kind)
}

// FromIndex is the inverse of Index.
func FromIndex(i int) Event {
	return Event{Task: i / 2, Kind: Kind(i % 2)}
}

// Count returns the number of events in a network with numTasks real tasks,
// including the origin and terminal events.
func Count(numTasks int) int {
	return 2 * (numTasks + 1)
}
