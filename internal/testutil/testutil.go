// Package testutil provides shared helpers for camlaunch tests: a
// thread-safe log buffer, logger-bearing contexts, and a harness that runs
// the whole app against description files written to a temp dir.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"camlaunch/internal/ctxlog"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Context returns a background context carrying a debug-level test logger.
// Log output is discarded unless CAMLAUNCH_TEST_LOGS=true, in which case it
// goes to stderr.
func Context(tb testing.TB) context.Context {
	tb.Helper()
	ctx, _ := ContextWithBuffer()
	if os.Getenv("CAMLAUNCH_TEST_LOGS") == "true" {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return ctxlog.WithLogger(context.Background(), logger)
	}
	return ctx
}

// ContextWithBuffer returns a context whose logger writes text-format debug
// output into the returned buffer, for tests asserting on log lines.
func ContextWithBuffer() (context.Context, *SafeBuffer) {
	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}
