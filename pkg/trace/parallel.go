package trace

import (
	"runtime"
	"sync"
)

// StageFunc applies one surface interaction to a collection, recording
// segments in the log when it is non-nil. Pipelines are ordered slices of
// StageFunc.
type StageFunc func(*Collection, *Lines)

// Run applies the pipeline stages to the collection in order.
func Run(c *Collection, pipeline []StageFunc, log *Lines) {
	for _, stage := range pipeline {
		stage(c, log)
	}
}

// RunParallel traces the collection through the pipeline on several
// goroutines. Rays are independent, so the collection is partitioned and
// each worker walks its partition through the whole pipeline with a
// private line log; survivors and segments are merged behind a barrier.
// workers <= 0 selects one worker per CPU.
func RunParallel(c *Collection, pipeline []StageFunc, workers int, log *Lines) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	parts := c.split(workers)
	logs := make([]*Lines, len(parts))

	var wg sync.WaitGroup
	for i, part := range parts {
		if log != nil {
			logs[i] = &Lines{}
		}
		wg.Add(1)
		go func(part *Collection, partLog *Lines) {
			defer wg.Done()
			Run(part, pipeline, partLog)
		}(part, logs[i])
	}
	wg.Wait()

	for i, part := range parts {
		c.Add(part.rays...)
		if log != nil {
			log.Merge(logs[i])
		}
	}
}
