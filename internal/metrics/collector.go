package metrics

import (
	"context"
	"log/slog"
	"time"
)

// HitEvent describes a single request that reached the fallback handler.
type HitEvent struct {
	Path      string
	Method    string
	ClientIP  string
	Timestamp time.Time
}

// Collector consumes hit events from a buffered channel so the request
// path never blocks on accounting. Events that would overflow the buffer
// are dropped by the sender.
type Collector struct {
	eventCh chan HitEvent
	metrics *Metrics
	logger  *slog.Logger
}

func NewCollector(bufferSize int, logger *slog.Logger) *Collector {
	return &Collector{
		eventCh: make(chan HitEvent, bufferSize),
		metrics: NewMetrics(),
		logger:  logger,
	}
}

func (c *Collector) EventChannel() chan<- HitEvent {
	return c.eventCh
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("Hit collector started")
	defer c.logger.Info("Hit collector stopped")

	for {
		select {
		case event := <-c.eventCh:
			c.metrics.RecordHit(event.Path, event.Method, event.Timestamp)
		case <-ctx.Done():
			// Drain remaining events before shutdown
			c.drain()
			return
		}
	}
}

func (c *Collector) drain() {
	for {
		select {
		case event := <-c.eventCh:
			c.metrics.RecordHit(event.Path, event.Method, event.Timestamp)
		default:
			return
		}
	}
}

func (c *Collector) Snapshot() Snapshot {
	return c.metrics.Snapshot()
}
