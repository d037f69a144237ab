package scheduler

// Scheduler produces Workers, each an independent serial execution context.
type Scheduler interface {
	// NewWorker returns a worker that executes scheduled tasks sequentially.
	// The caller owns the worker and must Dispose it when done.
	NewWorker() Worker
}

// Worker executes tasks one at a time, in submission order.
type Worker interface {
	// Schedule submits a task for execution. It never blocks. Returns false
	// if the worker is disposed and the task will not run.
	Schedule(task func()) bool
	// Dispose cancels pending tasks and releases the worker. Idempotent.
	// A task that is already running is not interrupted.
	Dispose()
}
