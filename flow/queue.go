package flow

import "sync/atomic"

// spscQueue is a bounded single-producer single-consumer FIFO. Producer
// callbacks are serialized by the stream protocol and the drainer is
// single-flight, so one writer and one reader suffice. Indices are monotonic
// counters; storage is a power-of-two ring, but the logical capacity check
// is exact.
type spscQueue[T any] struct {
	buf      []T
	mask     uint64
	capacity uint64
	head     atomic.Uint64 // next slot to read, consumer-owned
	tail     atomic.Uint64 // next slot to write, producer-owned
}

func newSpscQueue[T any](capacity int) *spscQueue[T] {
	n := uint64(1)
	for n < uint64(capacity) {
		n <<= 1
	}
	return &spscQueue[T]{
		buf:      make([]T, n),
		mask:     n - 1,
		capacity: uint64(capacity),
	}
}

// offer appends an item. Returns false when the queue is at capacity, which
// the caller treats as a backpressure protocol violation.
func (q *spscQueue[T]) offer(item T) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() >= q.capacity {
		return false
	}
	q.buf[tail&q.mask] = item
	q.tail.Store(tail + 1)
	return true
}

// poll removes and returns the oldest item.
func (q *spscQueue[T]) poll() (T, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		var zero T
		return zero, false
	}
	idx := head & q.mask
	item := q.buf[idx]
	var zero T
	q.buf[idx] = zero // drop the reference for the GC
	q.head.Store(head + 1)
	return item, true
}

func (q *spscQueue[T]) size() int {
	return int(q.tail.Load() - q.head.Load())
}

func (q *spscQueue[T]) isEmpty() bool {
	return q.head.Load() == q.tail.Load()
}

// clear discards queued items. Consumer-side only; the single-flight
// discipline keeps it exclusive with poll.
func (q *spscQueue[T]) clear() {
	for {
		if _, ok := q.poll(); !ok {
			return
		}
	}
}
