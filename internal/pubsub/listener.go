package pubsub

import "context"

// ContinuousListener maintains a subscription for a consumer that reads one
// event at a time, such as a CLI command tailing log output.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener creates a new listener that subscribes to the broker.
// The subscription is automatically cleaned up when the context is cancelled.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{
		ctx: ctx,
		ch:  broker.Subscribe(ctx),
	}
}

// Next blocks until an event arrives. It returns false once the context is
// cancelled or the broker is closed.
func (l *ContinuousListener[T]) Next() (Event[T], bool) {
	select {
	case <-l.ctx.Done():
		return Event[T]{}, false
	case event, ok := <-l.ch:
		return event, ok
	}
}

// Drain returns every event that is already buffered without blocking.
func (l *ContinuousListener[T]) Drain() []Event[T] {
	var out []Event[T]
	for {
		select {
		case event, ok := <-l.ch:
			if !ok {
				return out
			}
			out = append(out, event)
		default:
			return out
		}
	}
}
