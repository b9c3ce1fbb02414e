// Package workers runs independent units of work concurrently and hands
// their results back in a fixed order.
//
// The resolver uses it to load every source kind in parallel while keeping
// the merge of their results strictly ordered: result i always belongs to
// worker i, whatever order the workers finish in.
package workers

import "context"

// Worker is the interface that must be implemented by any unit of work run
// by [Workers]. Run blocks until the work is done and returns its result.
//
// Example implementation:
//
//	type kindWorker struct{ kind source.Kind }
//
//	func (w kindWorker) Run(ctx context.Context) (models.Tree, error) {
//	    // load the kind
//	}
type Worker[T any] interface {
	Run(ctx context.Context) (T, error)
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc[T any] func(ctx context.Context) (T, error)

// Run implements [Worker].
func (f WorkerFunc[T]) Run(ctx context.Context) (T, error) {
	return f(ctx)
}
