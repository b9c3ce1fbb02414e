package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers is an ordered group of workers.
type Workers[T any] struct {
	workers []Worker[T]
	limit   int
}

// New returns a group running workers.
func New[T any](workers ...Worker[T]) *Workers[T] {
	return &Workers[T]{workers: workers}
}

// WithLimit caps the number of workers running at once. n <= 0 means no
// limit.
func (w *Workers[T]) WithLimit(n int) *Workers[T] {
	w.limit = n
	return w
}

// Add appends a worker to the group.
func (w *Workers[T]) Add(worker Worker[T]) {
	w.workers = append(w.workers, worker)
}

// Len returns the number of workers in the group.
func (w *Workers[T]) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. Results are returned
// in the order the workers were added. The first error cancels the context
// passed to the remaining workers and is returned once all have stopped.
// Workers not yet started when ctx is done are skipped.
func (w *Workers[T]) Run(ctx context.Context) ([]T, error) {
	results := make([]T, len(w.workers))

	g, gctx := errgroup.WithContext(ctx)
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	for i, worker := range w.workers {
		i, worker := i, worker
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := worker.Run(gctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
