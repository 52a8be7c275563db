package scene

import (
	"runtime"
	"sync"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

// BuildTask is one configuration to build
type BuildTask struct {
	TaskID int // position in the submitted batch
	Name   string
	Config config.SceneConfig
}

// BuildResult is the outcome of one BuildTask
type BuildResult struct {
	TaskID int
	Name   string
	Scene  *Scene
	Error  error
}

// WorkerPool builds independent scenes in parallel. Each build owns its own
// builder, so workers share nothing but the logger.
type WorkerPool struct {
	taskQueue   chan BuildTask
	resultQueue chan BuildResult
	numWorkers  int
	logger      core.Logger
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool for up to maxTasks builds
func NewWorkerPool(numWorkers, maxTasks int, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		taskQueue:   make(chan BuildTask, maxTasks),
		resultQueue: make(chan BuildResult, maxTasks),
		numWorkers:  numWorkers,
		logger:      core.OrNop(logger),
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop waits for queued builds to finish and closes the results
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a build
func (wp *WorkerPool) SubmitTask(task BuildTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed build
func (wp *WorkerPool) GetResult() (BuildResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		s, err := Build(task.Config, wp.logger)
		wp.resultQueue <- BuildResult{TaskID: task.TaskID, Name: task.Name, Scene: s, Error: err}
	}
}

// BuildAll builds every task and returns the results in task order
func BuildAll(tasks []BuildTask, numWorkers int, logger core.Logger) []BuildResult {
	wp := NewWorkerPool(numWorkers, len(tasks), logger)
	wp.Start()
	for i, task := range tasks {
		task.TaskID = i
		wp.SubmitTask(task)
	}
	wp.Stop()

	results := make([]BuildResult, len(tasks))
	for {
		result, ok := wp.GetResult()
		if !ok {
			break
		}
		results[result.TaskID] = result
	}
	return results
}
