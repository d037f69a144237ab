package flowtest

import (
	"fmt"
	"sync"
	"time"

	"github.com/kbukum/streamkit/flow"
)

// Subscriber records everything it receives. Safe for the usual stream
// concurrency: serialized producer callbacks racing consumer-side calls.
type Subscriber[T any] struct {
	mu        sync.Mutex
	sub       flow.Subscription
	items     []T
	err       error
	completed bool

	initial int64
	done    chan struct{}
}

// NewSubscriber returns a recording subscriber that requests initialRequest
// on subscribe. Pass 0 to control demand manually, flow.Unbounded to
// disable backpressure from the consumer side.
func NewSubscriber[T any](initialRequest int64) *Subscriber[T] {
	return &Subscriber[T]{
		initial: initialRequest,
		done:    make(chan struct{}),
	}
}

func (s *Subscriber[T]) OnSubscribe(sub flow.Subscription) {
	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()
	if s.initial > 0 {
		sub.Request(s.initial)
	}
}

func (s *Subscriber[T]) OnNext(item T) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
}

func (s *Subscriber[T]) OnError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	close(s.done)
}

func (s *Subscriber[T]) OnComplete() {
	s.mu.Lock()
	s.completed = true
	s.mu.Unlock()
	close(s.done)
}

// Request grants n more demand through the recorded subscription.
func (s *Subscriber[T]) Request(n int64) {
	s.subscription().Request(n)
}

// Cancel cancels the recorded subscription.
func (s *Subscriber[T]) Cancel() {
	s.subscription().Cancel()
}

func (s *Subscriber[T]) subscription() flow.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub == nil {
		panic("flowtest: not subscribed yet")
	}
	return s.sub
}

// Items returns a copy of the items received so far.
func (s *Subscriber[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Err returns the recorded terminal error, if any.
func (s *Subscriber[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Completed reports whether OnComplete was received.
func (s *Subscriber[T]) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// AwaitDone blocks until a terminal event arrives or the timeout elapses.
func (s *Subscriber[T]) AwaitDone(timeout time.Duration) error {
	select {
	case <-s.done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("flowtest: no terminal event within %v", timeout)
	}
}
