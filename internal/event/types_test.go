// internal/event/types_test.go
package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "s000", Origin.String())
	assert.Equal(t, "f000", Terminal.String())
	assert.Equal(t, "s003", Start(3).String())
	assert.Equal(t, "f042", Finish(42).String())
}

func TestEvent_IndexRoundTrip(t *testing.T) {
	numTasks := 5
	seen := make(map[int]bool)
	for i := 0; i < Count(numTasks); i++ {
		ev := FromIndex(i)
		assert.Equal(t, i, ev.Index())
		assert.False(t, seen[ev.Index()])
		seen[ev.Index()] = true
	}
	assert.Len(t, seen, 12)
	assert.Equal(t, 0, Origin.Index())
	assert.Equal(t, 1, Terminal.Index())
	assert.Equal(t, 10, Start(5).Index())
	assert.Equal(t, 11, Finish(5).Index())
}

func TestEvent_TextRoundTrip(t *testing.T) {
	for _, ev := range []Event{Origin, Terminal, Start(9), Finish(120)} {
		t.Run(ev.String(), func(t *testing.T) {
			text, err := ev.MarshalText()
			require.NoError(t, err)

			var back Event
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, ev, back)
		})
	}
}
