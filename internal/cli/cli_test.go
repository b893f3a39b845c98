package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stnsched/internal/app"
)

func TestParse(t *testing.T) {
	withPath := func(path string, mutate func(c *app.Config)) *app.Config {
		cfg := app.DefaultConfig()
		cfg.InstancePath = path
		if mutate != nil {
			mutate(&cfg)
		}
		return &cfg
	}

	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		wantExit   bool
		wantErrMsg string
	}{
		{
			name: "positional path with defaults",
			args: []string{"instances/"},
			want: withPath("instances/", nil),
		},
		{
			name: "long flag wins over positional",
			args: []string{"-instance", "a.hcl", "b.hcl"},
			want: withPath("a.hcl", nil),
		},
		{
			name: "shorthand flag",
			args: []string{"-i", "a.yaml"},
			want: withPath("a.yaml", nil),
		},
		{
			name: "every tunable",
			args: []string{
				"-mode", "REPLAY", "-robot-policy", "valid", "-solutions", "sol",
				"-proximity", "2", "-discount", "1", "-penalty-per-task", "20",
				"-horizon-per-task", "15", "-gamma", "0.5", "-workers", "4",
				"-trace", "out.yaml", "-log-format", "TEXT", "-log-level", "debug",
				"gen",
			},
			want: withPath("gen", func(c *app.Config) {
				c.Mode = app.ModeReplay
				c.RobotPolicy = "valid"
				c.SolutionDir = "sol"
				c.Proximity = 2
				c.Discount = 1
				c.PenaltyPerTask = 20
				c.HorizonPerTask = 15
				c.Gamma = 0.5
				c.Workers = 4
				c.TracePath = "out.yaml"
				c.LogFormat = "text"
				c.LogLevel = "debug"
			}),
		},
		{
			name:     "no path prints usage",
			args:     []string{},
			wantExit: true,
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantExit: true,
		},
		{
			name:       "unknown flag",
			args:       []string{"-nope"},
			wantErrMsg: "flag provided but not defined: -nope",
		},
		{
			name:       "bad log format",
			args:       []string{"-log-format", "xml", "x"},
			wantErrMsg: "invalid log-format",
		},
		{
			name:       "bad log level",
			args:       []string{"-log-level", "loud", "x"},
			wantErrMsg: "invalid log-level",
		},
		{
			name:       "bad mode",
			args:       []string{"-mode", "greedy", "x"},
			wantErrMsg: `invalid mode "greedy"`,
		},
		{
			name:       "bad policy",
			args:       []string{"-robot-policy", "v1", "x"},
			wantErrMsg: "unknown robot policy",
		},
		{
			name:       "bad gamma",
			args:       []string{"-gamma", "2", "x"},
			wantErrMsg: "gamma must be in [0, 1]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			got, exit, err := Parse(tc.args, out)

			if tc.wantErrMsg != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, exit)
			if tc.wantExit {
				assert.Nil(t, got)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
