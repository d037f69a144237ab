package flowtest

import "github.com/kbukum/streamkit/flow"

// OnRequest wraps source so fn observes every upstream request amount.
// Useful for asserting replenish traces.
func OnRequest[T any](source flow.Publisher[T], fn func(n int64)) flow.Publisher[T] {
	return &onRequestPublisher[T]{source: source, fn: fn}
}

type onRequestPublisher[T any] struct {
	source flow.Publisher[T]
	fn     func(n int64)
}

func (p *onRequestPublisher[T]) Subscribe(s flow.Subscriber[T]) {
	p.source.Subscribe(&onRequestSubscriber[T]{actual: s, fn: p.fn})
}

type onRequestSubscriber[T any] struct {
	actual   flow.Subscriber[T]
	fn       func(n int64)
	upstream flow.Subscription
}

func (s *onRequestSubscriber[T]) OnSubscribe(up flow.Subscription) {
	s.upstream = up
	s.actual.OnSubscribe(s)
}

func (s *onRequestSubscriber[T]) OnNext(item T) { s.actual.OnNext(item) }
func (s *onRequestSubscriber[T]) OnError(err error) {
	s.actual.OnError(err)
}
func (s *onRequestSubscriber[T]) OnComplete() { s.actual.OnComplete() }

func (s *onRequestSubscriber[T]) Request(n int64) {
	s.fn(n)
	s.upstream.Request(n)
}

func (s *onRequestSubscriber[T]) Cancel() {
	s.upstream.Cancel()
}
