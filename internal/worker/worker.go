package worker

import (
	"context"
	"sync"

	"github.com/shps951023/minipdf-bench/internal/logger"
)

// HandlerFunc processes the job at the given batch index.
type HandlerFunc func(ctx context.Context, index int)

// Run fans jobCount jobs out across workerCount goroutines and blocks until
// every dispatched job is done or the context is cancelled. Jobs are
// independent; each handler call owns its own index, so handlers need no
// synchronization of their own when they write into per-index slots.
func Run(ctx context.Context, jobCount, workerCount int, handler HandlerFunc) {
	if jobCount == 0 {
		return
	}
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > jobCount {
		workerCount = jobCount
	}

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := 0; i < jobCount; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				logger.Log.Debugf("worker dispatch cancelled at job %d", i)
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		workerID := w + 1
		go func() {
			defer wg.Done()
			for i := range jobs {
				handler(ctx, i)
			}
			logger.Log.Debugf("worker %d finished", workerID)
		}()
	}
	wg.Wait()
}
