// Package workerpool runs index-addressed work across a bounded set of
// goroutines. Workers pull the next index from a shared atomic cursor, so
// uneven item costs balance without pre-partitioning.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Workers resolves the pool size. A positive configured value wins;
// otherwise 80% of the available CPUs are used, never fewer than one.
func Workers(configured int) int {
	if configured > 0 {
		return configured
	}
	workers := runtime.NumCPU() * 4 / 5
	if workers < 1 {
		workers = 1
	}
	return workers
}

// ForEach invokes fn for every index in [0, n) using the given number of
// workers, returning once all invocations finish. Cancellation stops workers
// from claiming further indices; in-flight invocations run to completion.
// ForEach returns ctx.Err when the context ended early, nil otherwise.
func ForEach(ctx context.Context, workers, n int, fn func(index int)) error {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				index := int(cursor.Add(1)) - 1
				if index >= n {
					return
				}
				fn(index)
			}
		}()
	}
	wg.Wait()
	return ctx.Err()
}
