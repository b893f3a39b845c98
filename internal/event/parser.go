// internal/event/parser.go
package event

import (
	"fmt"
	"regexp"
	"strconv"
)

// nameRegex matches a canonical event name, e.g. `s0` or `f012`.
var nameRegex = regexp.MustCompile(`^([sf])(\d+)$`)

// Parse creates a new Event by parsing its canonical string representation.
func Parse(raw string) (Event, error) {
	if raw == "" {
		return Event{}, fmt.Errorf("event name cannot be empty")
	}

	matches := nameRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Event{}, fmt.Errorf("invalid event name: %q", raw)
	}

	task, err := strconv.Atoi(matches[2])
	if err != nil {
		// Unreachable for in-range values due to regex `\d+`
		return Event{}, fmt.Errorf("invalid task number in %q: %w", raw, err)
	}

	kind := KindStart
	if matches[1] == "f" {
		kind = KindFinish
	}
	return Event{Task: task, Kind: kind}, nil
}
