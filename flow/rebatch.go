package flow

import (
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/scheduler"
)

// Rebatch splits downstream demand into repeated upstream requests of at
// most batchSize, replenishing once three quarters of a batch has been
// consumed. The first upstream request is a full batch; subsequent requests
// are batchSize - batchSize/4.
//
// No execution context is crossed: the same drain machinery as ObserveOn
// runs on a trampoline worker, on the caller's goroutine, with errors
// delayed behind buffered items.
func Rebatch[T any](source Publisher[T], batchSize int) (Publisher[T], error) {
	if batchSize <= 0 {
		return nil, errors.InvalidBufferSize(batchSize)
	}
	return ObserveOn(source, scheduler.Trampoline(),
		WithBufferSize(batchSize),
		WithDelayError(true),
	)
}
