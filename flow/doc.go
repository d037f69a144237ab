// Package flow provides push-based, back-pressured streams.
//
// A Publisher delivers items to a Subscriber only after the subscriber has
// requested them through its Subscription ("demand"). ObserveOn is the
// asynchronous boundary: it relocates delivery onto a scheduler.Worker while
// preserving order, bounding memory with a fixed-capacity queue, and
// replenishing upstream demand in fixed batches. Rebatch applies the same
// demand-splitting without crossing an execution context.
//
//	src := flow.Range(1, 100)
//	p, err := flow.ObserveOn(src, scheduler.NewSerial(),
//	    flow.WithBufferSize(16),
//	)
//	if err != nil {
//	    ...
//	}
//	p.Subscribe(consumer)
//
// A producer that emits beyond the granted demand overruns the bounded queue
// and the subscription fails with a single BACKPRESSURE_OVERFLOW error.
package flow
