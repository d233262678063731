package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Handler consumes one event. A returned error is logged by the bus
// and never propagated to the publisher.
type Handler func(ctx context.Context, evt Event) error

// Bus is the in-process Publisher: a synchronous fan-out to all
// subscribed handlers. Delivery order among handlers follows
// subscription order; a failing or panicking handler does not stop
// the others.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	log      *slog.Logger
}

func NewBus(log *slog.Logger) *Bus {
	if log == nil {
		log = slog.Default()
	}
	return &Bus{log: log.With(slog.String("component", "notify.bus"))}
}

func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Publish(ctx context.Context, evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(ctx, h, evt)
	}
}

func (b *Bus) deliver(ctx context.Context, h Handler, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked",
				slog.Any("panic", r),
				slog.String("event_type", string(evt.Type)),
				slog.String("event_id", evt.ID.String()),
			)
		}
	}()

	if err := h(ctx, evt); err != nil {
		b.log.Warn("event handler failed",
			slog.Any("err", err),
			slog.String("event_type", string(evt.Type)),
			slog.String("event_id", evt.ID.String()),
		)
	}
}
