package team

import (
	"context"
	"sync"
)

// WorkerFunc processes a job of type T and returns a result of type U
type WorkerFunc[T any, U any] func(ctx context.Context, job T) (U, error)

// Team is a generic worker pool for embarrassingly-parallel map-and-gather
// work: N workers consume the jobs concurrently and each result lands in the
// slot of its input index, so the output order matches the input order no
// matter which job finishes first.
// WorkerCount: number of concurrent workers
// Worker: the function to process each job
type Team[T any, U any] struct {
	WorkerCount int
	Worker      WorkerFunc[T, U]
}

// Run executes the worker pool and returns one result per job, input-ordered.
// A job whose worker fails leaves the zero value in its slot; the caller
// decides what a gap means. Cancelling the context stops the pool as a unit:
// remaining jobs are drained without running and their slots stay zero.
func (t *Team[T, U]) Run(ctx context.Context, jobs []T) []U {
	results := make([]U, len(jobs))
	jobChan := make(chan int, len(jobs))
	var wg sync.WaitGroup

	workerCount := t.WorkerCount
	if workerCount <= 0 || workerCount > len(jobs) {
		workerCount = len(jobs)
	}

	// Start workers
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobChan {
				if ctx.Err() != nil {
					continue
				}
				if res, err := t.Worker(ctx, jobs[i]); err == nil {
					results[i] = res
				}
			}
		}()
	}

	// Feed job indices
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	return results
}
