// internal/event/format.go
package event

import "fmt"

// String serializes the Event into its canonical name, e.g. `f007`.
func (e Event) String() string {
	return fmt.Sprintf("%c%03d", e.Kind.letter(), e.Task)
}

// MarshalText encodes the event by its canonical name, so the network
// section of a run trace reads `from: s000`.
func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText parses the canonical name back into an Event.
func (e *Event) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
