package flow

import (
	"sync/atomic"

	"github.com/kbukum/streamkit/errors"
)

// Range returns a Publisher emitting count sequential ints starting at
// start. Emission honors demand and supports cancellation.
func Range(start, count int) Publisher[int] {
	return &rangePublisher{start: start, count: count}
}

type rangePublisher struct {
	start, count int
}

func (p *rangePublisher) Subscribe(s Subscriber[int]) {
	s.OnSubscribe(&rangeSubscription{
		actual: s,
		cursor: int64(p.start),
		end:    int64(p.start) + int64(p.count),
	})
}

type rangeSubscription struct {
	actual    Subscriber[int]
	requested demand
	cancelled atomic.Bool

	// cursor and end are touched only by the goroutine that owns the
	// emission loop; ownership passes through the demand counter.
	cursor, end int64
}

func (r *rangeSubscription) Request(n int64) {
	if n <= 0 {
		r.fail(errors.InvalidDemand(n))
		return
	}
	if r.requested.add(n) != 0 {
		// An emission loop is already running and will pick up the new
		// demand when it re-reads the counter.
		return
	}
	for {
		rq := r.requested.outstanding()
		var emitted int64
		for emitted < rq && r.cursor < r.end {
			if r.cancelled.Load() {
				return
			}
			r.actual.OnNext(int(r.cursor))
			r.cursor++
			emitted++
		}
		if r.cursor == r.end {
			if !r.cancelled.Swap(true) {
				r.actual.OnComplete()
			}
			return
		}
		if r.requested.produced(emitted) == 0 {
			return
		}
	}
}

func (r *rangeSubscription) Cancel() {
	r.cancelled.Store(true)
}

func (r *rangeSubscription) fail(err error) {
	if !r.cancelled.Swap(true) {
		r.actual.OnError(err)
	}
}

// FromSlice returns a Publisher emitting the elements of items in order.
func FromSlice[T any](items []T) Publisher[T] {
	return &slicePublisher[T]{items: items}
}

type slicePublisher[T any] struct {
	items []T
}

func (p *slicePublisher[T]) Subscribe(s Subscriber[T]) {
	s.OnSubscribe(&sliceSubscription[T]{actual: s, items: p.items})
}

type sliceSubscription[T any] struct {
	actual    Subscriber[T]
	requested demand
	cancelled atomic.Bool

	items []T
	index int64
}

func (r *sliceSubscription[T]) Request(n int64) {
	if n <= 0 {
		r.fail(errors.InvalidDemand(n))
		return
	}
	if r.requested.add(n) != 0 {
		return
	}
	end := int64(len(r.items))
	for {
		rq := r.requested.outstanding()
		var emitted int64
		for emitted < rq && r.index < end {
			if r.cancelled.Load() {
				return
			}
			r.actual.OnNext(r.items[r.index])
			r.index++
			emitted++
		}
		if r.index == end {
			if !r.cancelled.Swap(true) {
				r.actual.OnComplete()
			}
			return
		}
		if r.requested.produced(emitted) == 0 {
			return
		}
	}
}

func (r *sliceSubscription[T]) Cancel() {
	r.cancelled.Store(true)
}

func (r *sliceSubscription[T]) fail(err error) {
	if !r.cancelled.Swap(true) {
		r.actual.OnError(err)
	}
}
