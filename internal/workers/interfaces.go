// Package workers provides cancellable background workers driven by an
// injectable clock.
//
// An [IntervalWorker] calls a function on every tick of its interval. A
// [Group] starts a set of workers under one shared context so that they can
// be cancelled and awaited together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
