// Package workers provides the background workers of the site and a
// Workers aggregate that runs them side by side.
package workers

import "context"

// Worker is a background task.
//
// Run blocks until ctx is done or the worker has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}
