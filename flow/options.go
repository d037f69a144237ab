package flow

import (
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

// Option configures an ObserveOn boundary.
type Option func(*settings)

type settings struct {
	bufferSize int
	delayError bool
	log        *logger.Logger
	metrics    *observability.StreamMetrics
}

func defaultSettings() settings {
	return settings{
		bufferSize: DefaultBufferSize,
	}
}

// WithBufferSize overrides the bounded queue capacity. Must be positive.
func WithBufferSize(n int) Option {
	return func(s *settings) { s.bufferSize = n }
}

// WithDelayError delays a recorded failure until all buffered items have
// been delivered. Default is false: a failure cuts ahead of queued items.
func WithDelayError(delay bool) Option {
	return func(s *settings) { s.delayError = delay }
}

// WithLogger attaches a logger; terminal events and overflows are logged.
func WithLogger(l *logger.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithMetrics attaches stream metrics recorded by the drain loop.
func WithMetrics(m *observability.StreamMetrics) Option {
	return func(s *settings) { s.metrics = m }
}
