// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process fans items out to workerCount goroutines, invoking process for each.
// The first process error cancels the pool and is returned after all workers
// have drained.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	if workerCount <= 0 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						fail(err)
						return
					}
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
