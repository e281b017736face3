package testutil

import (
	"context"
	"time"
)

// TestContext creates a context with the default 10s test timeout.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// TestContextWithTimeout creates a context with a custom timeout.
func TestContextWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
