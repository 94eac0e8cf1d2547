// Package worker provides a small generic worker pool used for batch icon
// rendering.
package worker

import "sync"

// Job pairs an input with its position so results keep submission order.
type Job[T any] struct {
	Index int
	Data  T
}

// Result is the outcome of one job.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// ProcessFunc handles one job.
type ProcessFunc[I, O any] func(job Job[I]) (O, error)

// ProgressFunc is called after each job completes.
type ProgressFunc func(completed, total int)

// Process runs fn over items on up to workers goroutines and returns the
// outputs in input order. The first job error fails the batch; in-flight
// jobs still run to completion before Process returns.
func Process[I, O any](items []I, workers int, fn ProcessFunc[I, O], onProgress ProgressFunc) ([]O, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan Job[I], len(items))
	results := make(chan Result[O], len(items))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				value, err := fn(job)
				results <- Result[O]{Index: job.Index, Value: value, Err: err}
			}
		}()
	}

	for i, item := range items {
		jobs <- Job[I]{Index: i, Data: item}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	output := make([]O, len(items))
	var firstErr error
	completed := 0
	for res := range results {
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
		}
		output[res.Index] = res.Value
		completed++
		if onProgress != nil {
			onProgress(completed, len(items))
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return output, nil
}
