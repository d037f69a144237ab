package flow

import "math"

// DefaultBufferSize is the per-subscription queue capacity used by ObserveOn
// when no override is given.
const DefaultBufferSize = 128

// Unbounded is the request amount that disables demand accounting.
const Unbounded = math.MaxInt64

// Publisher is a provider of a sequenced stream of items, publishing them
// according to the demand received from its Subscriber. Subscribe may be
// called multiple times; each call starts an independent subscription.
type Publisher[T any] interface {
	Subscribe(s Subscriber[T])
}

// Subscriber receives a call to OnSubscribe once, then zero or more OnNext
// calls, then at most one of OnError or OnComplete. Producer callbacks are
// serialized: implementations never see two concurrently.
type Subscriber[T any] interface {
	// OnSubscribe hands the subscriber the Subscription it uses to grant
	// demand and to cancel. No items flow before the first Request.
	OnSubscribe(sub Subscription)
	// OnNext delivers one item.
	OnNext(item T)
	// OnError signals a terminal failure. No further callbacks follow.
	OnError(err error)
	// OnComplete signals exhaustion. No further callbacks follow.
	OnComplete()
}

// Subscription is the one-to-one link between a Subscriber and a Publisher.
// Request and Cancel may be called from any goroutine.
type Subscription interface {
	// Request grants the producer permission to deliver n more items.
	// n must be positive; a non-positive amount fails the subscription.
	Request(n int64)
	// Cancel stops the subscription. Idempotent. Once observed, no further
	// subscriber callbacks occur.
	Cancel()
}
