package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/vk/stnsched/internal/ctxlog"
)

// LogContext returns a context carrying a debug-level text logger that
// writes into buf. With STNSCHED_TEST_LOGS=true the captured output is also
// printed when the test finishes.
func LogContext(t *testing.T, buf *SafeBuffer) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if os.Getenv("STNSCHED_TEST_LOGS") == "true" {
		t.Cleanup(func() {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		})
	}
	return ctxlog.WithLogger(context.Background(), logger)
}
