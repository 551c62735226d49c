package compliance

import (
	"context"
	"log/slog"

	"decahose/pkg/compliance/metrics"
	"decahose/pkg/domain"
)

// Handler processes a classified record of one action class. Handlers
// typically wrap the record in the matching action view.
type Handler func(ctx context.Context, base *Base) error

// Dispatcher routes classified records to per-class handlers. Use it to
// fan out a decoded firehose batch by action class. Dispatch is fully
// synchronous; the dispatcher performs no I/O of its own.
//
// Register handlers before the first Dispatch call; the dispatcher is
// not safe for concurrent registration.
type Dispatcher struct {
	handlers map[domain.ActionClass]Handler
	fallback Handler
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewDispatcher creates a dispatcher. Both arguments are optional: a
// nil logger falls back to slog.Default, nil metrics disables counting.
func NewDispatcher(logger *slog.Logger, m *metrics.Metrics) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		handlers: make(map[domain.ActionClass]Handler),
		logger:   logger,
		metrics:  m,
	}
}

// Register adds a handler for a specific action class.
func (d *Dispatcher) Register(class domain.ActionClass, h Handler) {
	d.handlers[class] = h
}

// Fallback sets the handler for classes with no registered handler.
func (d *Dispatcher) Fallback(h Handler) {
	d.fallback = h
}

// Dispatch classifies the record and routes it to the handler for its
// class.
//
// Classification failures are logged, counted, and returned — an
// unrecognized action usually means the upstream schema grew, and
// callers should surface that rather than drop records silently. A
// class with no handler and no fallback is logged and skipped without
// error.
func (d *Dispatcher) Dispatch(ctx context.Context, rec Record) error {
	base, err := NewBase(rec)
	if err != nil {
		if d.metrics != nil {
			d.metrics.IncrementUnrecognized()
		}
		d.logger.Warn("failed to classify compliance record", "error", err)
		return err
	}
	if d.metrics != nil {
		d.metrics.IncrementProcessed(base.Class().String())
	}
	handler, ok := d.handlers[base.Class()]
	if !ok {
		if d.fallback != nil {
			return d.fallback(ctx, base)
		}
		d.logger.Warn("no handler for action class, skipping record",
			"class", base.Class().String(),
			"action", base.Action(),
		)
		return nil
	}
	return handler(ctx, base)
}
