// Package settle runs independent tasks concurrently and waits for all of them,
// collecting each outcome instead of stopping at the first failure.
package settle

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of work. It should honour ctx cancellation.
type Task func(ctx context.Context) error

// Result is the outcome of the task at the same index.
type Result struct {
	Err error
}

// OK reports whether the task succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// All starts every task in its own goroutine and returns once all have finished.
// Results are in task order. A panicking task is reported as a failed Result.
// Failures never cancel the other tasks.
func All(ctx context.Context, tasks ...Task) []Result {
	results := make([]Result, len(tasks))

	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			results[i].Err = run(ctx, task)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func run(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task(ctx)
}
