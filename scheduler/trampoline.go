package scheduler

import "sync/atomic"

// Trampoline returns a Scheduler whose workers run tasks inline on the
// calling goroutine. No execution context is crossed; callers must ensure
// scheduled tasks do not re-enter themselves.
func Trampoline() Scheduler {
	return trampolineScheduler{}
}

type trampolineScheduler struct{}

func (trampolineScheduler) NewWorker() Worker {
	return &trampolineWorker{}
}

type trampolineWorker struct {
	disposed atomic.Bool
}

func (w *trampolineWorker) Schedule(task func()) bool {
	if w.disposed.Load() {
		return false
	}
	task()
	return true
}

func (w *trampolineWorker) Dispose() {
	w.disposed.Store(true)
}
