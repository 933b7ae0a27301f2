package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers as one group.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers. Nil entries are ignored.
func NewWorkers(workers ...Worker) *Workers {
	group := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, w := range workers {
		if w != nil {
			group.workers = append(group.workers, w)
		}
	}
	return group
}

// Run starts every worker on its own goroutine and blocks until all of them
// return. The first failure cancels the context shared by the rest.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, worker := range w.workers {
		g.Go(func() error {
			if err := worker.Run(gctx); err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Len returns the number of workers in the group.
func (w *Workers) Len() int {
	return len(w.workers)
}
