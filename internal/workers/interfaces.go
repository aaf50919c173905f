// Package workers runs the background jobs of the selector server.
// It defines the Worker interface and a Workers aggregate that runs them
// side by side until their context ends.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done or the job
// cannot continue.
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
