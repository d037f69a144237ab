package flow

import (
	"context"
	stderrors "errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/scheduler"
)

// ObserveOn relocates delivery of source's items onto a worker of sched.
// Items are delivered in order, never beyond the consumer's demand, and
// buffered in a fixed-capacity queue; a producer that outruns the queue
// fails the subscription with a BACKPRESSURE_OVERFLOW error.
//
// Each subscription takes its own worker from sched and disposes it when the
// subscription ends.
func ObserveOn[T any](source Publisher[T], sched scheduler.Scheduler, opts ...Option) (Publisher[T], error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.bufferSize <= 0 {
		return nil, errors.InvalidBufferSize(s.bufferSize)
	}
	return &observeOnPublisher[T]{source: source, sched: sched, settings: s}, nil
}

type observeOnPublisher[T any] struct {
	source   Publisher[T]
	sched    scheduler.Scheduler
	settings settings
}

func (p *observeOnPublisher[T]) Subscribe(s Subscriber[T]) {
	p.source.Subscribe(newObserveOnSubscriber(s, p.sched.NewWorker(), p.settings))
}

// terminal is the immutable descriptor published exactly once per
// subscription. A nil err means completion.
type terminal struct {
	err error
}

// observeOnSubscriber is both the producer-facing subscriber and the
// consumer-facing subscription of one async boundary. Producer callbacks are
// serialized per protocol; Request and Cancel may race with them from other
// goroutines. The only shared state is the queue, the demand counter, the
// terminal slot, and the work-in-progress counter, all lock-free.
type observeOnSubscriber[T any] struct {
	actual Subscriber[T]
	worker scheduler.Worker

	queue     *spscQueue[T]
	requested demand
	wip       atomic.Int64
	terminal  atomic.Pointer[terminal]
	cancelled atomic.Bool
	released  atomic.Bool

	upstream   Subscription
	delayError bool
	capacity   int64
	limit      int64

	// consumed counts deliveries since the last replenish. Drain-side only.
	consumed int64

	id      string
	log     *logger.Logger
	metrics *observability.StreamMetrics
}

func newObserveOnSubscriber[T any](actual Subscriber[T], worker scheduler.Worker, s settings) *observeOnSubscriber[T] {
	capacity := int64(s.bufferSize)
	return &observeOnSubscriber[T]{
		actual:     actual,
		worker:     worker,
		queue:      newSpscQueue[T](s.bufferSize),
		delayError: s.delayError,
		capacity:   capacity,
		limit:      capacity - capacity>>2,
		id:         uuid.NewString(),
		log:        s.log,
		metrics:    s.metrics,
	}
}

// --- producer side ---

func (s *observeOnSubscriber[T]) OnSubscribe(up Subscription) {
	s.upstream = up
	s.metrics.RecordSubscribe(context.Background())
	if s.log != nil {
		s.log.Debug("subscribed", logger.Fields(
			logger.FieldSubscriptionID, s.id,
			logger.FieldCapacity, s.capacity,
		))
	}
	s.actual.OnSubscribe(s)
	// The first upstream batch fills the whole queue; replenishes keep one
	// batch in flight.
	up.Request(s.capacity)
}

func (s *observeOnSubscriber[T]) OnNext(item T) {
	if s.terminal.Load() != nil || s.cancelled.Load() {
		return
	}
	if !s.queue.offer(item) {
		// The producer emitted beyond the granted demand. Fatal, and it
		// outranks any later terminal signal, but never an earlier one.
		s.upstream.Cancel()
		if s.publishTerminal(errors.BackpressureOverflow(int(s.capacity))) {
			s.metrics.RecordOverflow(context.Background())
			if s.log != nil {
				s.log.Warn("backpressure overflow", logger.Fields(
					logger.FieldSubscriptionID, s.id,
					logger.FieldCapacity, s.capacity,
				))
			}
		}
	}
	s.trySchedule()
}

func (s *observeOnSubscriber[T]) OnError(err error) {
	s.publishTerminal(upstreamError(err))
	s.trySchedule()
}

func (s *observeOnSubscriber[T]) OnComplete() {
	s.publishTerminal(nil)
	s.trySchedule()
}

// publishTerminal records the terminal state, first write wins. Returns
// whether this call won the publication.
func (s *observeOnSubscriber[T]) publishTerminal(err error) bool {
	return s.terminal.CompareAndSwap(nil, &terminal{err: err})
}

// upstreamError classifies a producer-signaled failure. Stream errors pass
// through untouched so protocol violations keep their code.
func upstreamError(err error) error {
	var se *errors.StreamError
	if stderrors.As(err, &se) {
		return err
	}
	return errors.UpstreamFailure(err)
}

// --- consumer side ---

func (s *observeOnSubscriber[T]) Request(n int64) {
	if n <= 0 {
		// Bad demand is terminal for the subscription.
		s.upstream.Cancel()
		s.publishTerminal(errors.InvalidDemand(n))
		s.trySchedule()
		return
	}
	s.requested.add(n)
	s.trySchedule()
}

func (s *observeOnSubscriber[T]) Cancel() {
	if s.cancelled.Swap(true) {
		return
	}
	s.upstream.Cancel()
	s.release("cancel")
	// If no drain is in flight we own the queue and can drop it now;
	// otherwise the running drain observes the flag and clears it.
	if s.wip.Add(1) == 1 {
		s.queue.clear()
	}
}

// release disposes the worker and records the end of the subscription,
// exactly once.
func (s *observeOnSubscriber[T]) release(kind string) {
	if s.released.Swap(true) {
		return
	}
	s.worker.Dispose()
	s.metrics.RecordTerminal(context.Background(), kind)
	s.metrics.RecordUnsubscribe(context.Background())
	if s.log != nil {
		s.log.Debug("subscription ended", logger.Fields(
			logger.FieldSubscriptionID, s.id,
			logger.FieldStatus, kind,
		))
	}
}

// --- drain ---

// trySchedule wakes the drainer. Only the 0→1 transition schedules; a drain
// already in flight just observes the raised counter and loops again.
func (s *observeOnSubscriber[T]) trySchedule() {
	if s.wip.Add(1) != 1 {
		return
	}
	s.worker.Schedule(s.drain)
}

// drain is the single-flight delivery loop. It runs on the subscription's
// worker, dequeues while demand allows, replenishes upstream demand in
// fixed batches, and delivers the terminal event exactly once.
func (s *observeOnSubscriber[T]) drain() {
	ctx := context.Background()
	missed := int64(1)
	for {
		s.metrics.RecordDrainCycle(ctx)
		var delivered int64
		for {
			if s.cancelled.Load() {
				s.queue.clear()
				s.metrics.RecordDelivered(ctx, delivered)
				return
			}
			term := s.terminal.Load()
			if term != nil && term.err != nil && !s.delayError {
				// Immediate-error policy: the failure cuts ahead of
				// anything still queued.
				s.queue.clear()
				s.metrics.RecordDelivered(ctx, delivered)
				s.deliverTerminal(term)
				return
			}
			if s.queue.isEmpty() {
				if term != nil {
					s.metrics.RecordDelivered(ctx, delivered)
					s.deliverTerminal(term)
					return
				}
				break
			}
			if s.requested.outstanding() == 0 {
				break
			}
			item, _ := s.queue.poll()
			s.actual.OnNext(item)
			delivered++
			s.requested.produced(1)
			s.consumed++
			if s.consumed == s.limit {
				// Replenish unconditionally; a finished upstream ignores it.
				s.consumed = 0
				s.upstream.Request(s.limit)
			}
		}
		s.metrics.RecordDelivered(ctx, delivered)
		missed = s.wip.Add(-missed)
		if missed == 0 {
			return
		}
	}
}

// deliverTerminal hands the terminal event to the consumer. Runs on the
// drain goroutine, at most once: the wip counter is deliberately left
// raised so no further drain is ever scheduled.
func (s *observeOnSubscriber[T]) deliverTerminal(term *terminal) {
	if term.err != nil {
		if s.log != nil {
			s.log.Debug("delivering failure", logger.Fields(
				logger.FieldSubscriptionID, s.id,
				logger.FieldError, term.err.Error(),
			))
		}
		s.actual.OnError(term.err)
		s.release("error")
		return
	}
	s.actual.OnComplete()
	s.release("complete")
}
