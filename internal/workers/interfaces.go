// Package workers provides abstractions for managing and running
// background work in the application.
//
// It defines the Worker interface, a Workers aggregate that runs several
// workers as one group, and Task, a cancellable one-shot scheduled
// callback used by every timer-driven component.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled or the worker fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
