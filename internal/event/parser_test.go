// internal/event/parser_test.go
package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Event
	}{
		{
			name:     "origin",
			raw:      "s000",
			expected: Origin,
		},
		{
			name:     "terminal",
			raw:      "f000",
			expected: Terminal,
		},
		{
			name:     "unpadded task number",
			raw:      "f7",
			expected: Finish(7),
		},
		{
			name:     "wide task number",
			raw:      "s1234",
			expected: Start(1234),
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - unknown kind",
			raw:       "x001",
			expectErr: true,
		},
		{
			name:      "error - missing number",
			raw:       "s",
			expectErr: true,
		},
		{
			name:      "error - negative number",
			raw:       "s-1",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, ev)
		})
	}
}
