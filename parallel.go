package tonecurve

import (
	"runtime"
	"sync"
)

var (
	maxParallelWorkers = 0
	workerSemOnce      sync.Once
	workerSem          chan struct{}
)

// parallelFor splits total units of work into contiguous slices and runs
// fn on each from its own goroutine. A package-wide semaphore caps the
// number of in-flight slices at GOMAXPROCS regardless of how many renders
// run concurrently. workers <= 0 uses the full capacity.
func parallelFor(total, workers int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	capacity := runtime.GOMAXPROCS(0)
	if maxParallelWorkers > 0 && capacity > maxParallelWorkers {
		capacity = maxParallelWorkers
	}
	if capacity < 1 {
		capacity = 1
	}
	workerSemOnce.Do(func() {
		workerSem = make(chan struct{}, capacity)
	})
	if workers <= 0 || workers > capacity {
		workers = capacity
	}
	if cap(workerSem) < workers {
		workers = cap(workerSem)
		if workers < 1 {
			workers = 1
		}
	}
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		fn(0, total)
		return
	}
	step := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * step
		end := start + step
		if end > total {
			end = total
		}
		if start >= end {
			break
		}
		workerSem <- struct{}{}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			defer func() { <-workerSem }()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
