package scheduler

import "sync"

// NewSerial returns a Scheduler whose workers each run on a dedicated
// goroutine with an unbounded FIFO task queue. Scheduling never blocks, so a
// producer can always hand work across the boundary without stalling.
func NewSerial() Scheduler {
	return serialScheduler{}
}

type serialScheduler struct{}

func (serialScheduler) NewWorker() Worker {
	w := &serialWorker{}
	w.cond = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

// serialWorker is a single-goroutine event loop. The queue is unbounded;
// bounding buffers is the flow package's job, not the scheduler's.
type serialWorker struct {
	mu       sync.Mutex
	cond     *sync.Cond
	tasks    []func()
	disposed bool
}

func (w *serialWorker) Schedule(task func()) bool {
	w.mu.Lock()
	if w.disposed {
		w.mu.Unlock()
		return false
	}
	w.tasks = append(w.tasks, task)
	w.mu.Unlock()
	w.cond.Signal()
	return true
}

func (w *serialWorker) Dispose() {
	w.mu.Lock()
	if !w.disposed {
		w.disposed = true
		w.tasks = nil
	}
	w.mu.Unlock()
	w.cond.Broadcast()
}

func (w *serialWorker) loop() {
	for {
		w.mu.Lock()
		for len(w.tasks) == 0 && !w.disposed {
			w.cond.Wait()
		}
		if w.disposed {
			w.mu.Unlock()
			return
		}
		task := w.tasks[0]
		w.tasks = w.tasks[1:]
		w.mu.Unlock()

		task()
	}
}
