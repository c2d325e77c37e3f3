package worker

import (
	"context"
)

// Worker is implemented by all background workers.
type Worker interface {
	// Start runs the worker loop until Stop or context cancellation.
	Start(ctx context.Context) error

	// Stop signals the worker to finish.
	Stop() error

	// Name returns the worker name.
	Name() string
}
