package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// StreamMetrics holds OpenTelemetry metric instruments for back-pressured
// stream observability. All methods are safe on a nil receiver so callers
// can leave metrics unconfigured.
type StreamMetrics struct {
	subscriptionsActive metric.Int64UpDownCounter
	itemsDelivered      metric.Int64Counter
	drainCycles         metric.Int64Counter
	overflowTotal       metric.Int64Counter
	terminalTotal       metric.Int64Counter
}

// NewStreamMetrics creates metric instruments on the given meter.
func NewStreamMetrics(meter metric.Meter) (*StreamMetrics, error) {
	subscriptionsActive, err := meter.Int64UpDownCounter("stream.subscriptions.active",
		metric.WithDescription("Number of currently active subscriptions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.subscriptions.active gauge: %w", err)
	}

	itemsDelivered, err := meter.Int64Counter("stream.items.delivered",
		metric.WithDescription("Total items delivered to consumers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.items.delivered counter: %w", err)
	}

	drainCycles, err := meter.Int64Counter("stream.drain.cycles",
		metric.WithDescription("Total drain cycles executed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drain.cycles counter: %w", err)
	}

	overflowTotal, err := meter.Int64Counter("stream.overflow.total",
		metric.WithDescription("Total backpressure overflows detected"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.overflow.total counter: %w", err)
	}

	terminalTotal, err := meter.Int64Counter("stream.terminal.total",
		metric.WithDescription("Subscription outcomes, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.terminal.total counter: %w", err)
	}

	return &StreamMetrics{
		subscriptionsActive: subscriptionsActive,
		itemsDelivered:      itemsDelivered,
		drainCycles:         drainCycles,
		overflowTotal:       overflowTotal,
		terminalTotal:       terminalTotal,
	}, nil
}

// RecordSubscribe increments the active subscription count.
func (m *StreamMetrics) RecordSubscribe(ctx context.Context) {
	if m == nil {
		return
	}
	m.subscriptionsActive.Add(ctx, 1)
}

// RecordUnsubscribe decrements the active subscription count.
func (m *StreamMetrics) RecordUnsubscribe(ctx context.Context) {
	if m == nil {
		return
	}
	m.subscriptionsActive.Add(ctx, -1)
}

// RecordDelivered adds the number of items delivered by one drain cycle.
func (m *StreamMetrics) RecordDelivered(ctx context.Context, n int64) {
	if m == nil || n == 0 {
		return
	}
	m.itemsDelivered.Add(ctx, n)
}

// RecordDrainCycle counts one execution of the drain loop.
func (m *StreamMetrics) RecordDrainCycle(ctx context.Context) {
	if m == nil {
		return
	}
	m.drainCycles.Add(ctx, 1)
}

// RecordOverflow counts a backpressure overflow.
func (m *StreamMetrics) RecordOverflow(ctx context.Context) {
	if m == nil {
		return
	}
	m.overflowTotal.Add(ctx, 1)
}

// RecordTerminal counts a subscription outcome. kind is one of "complete",
// "error", or "cancel".
func (m *StreamMetrics) RecordTerminal(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.terminalTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}
