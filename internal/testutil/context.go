package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds conversion, export and server tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends. The timeout falls
// back to DefaultTimeout and never runs past the go test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), budget(t, timeout))
	t.Cleanup(cancel)
	return ctx
}

// Cancelled returns a context that is already cancelled.
func Cancelled(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func budget(t testing.TB, timeout time.Duration) time.Duration {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline, ok := t.Deadline()
	if !ok {
		return timeout
	}
	// Leave a second for cleanup before the test binary is killed.
	if left := time.Until(deadline) - time.Second; left > 0 && left < timeout {
		return left
	}
	return timeout
}
