package pubsub

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultBufferSize = 64

// Option configures a Broker.
type Option func(*brokerOptions)

type brokerOptions struct {
	buffer int
	now    func() time.Time
}

// WithBuffer sets the per-subscriber channel capacity. Values below one
// fall back to the default.
func WithBuffer(size int) Option {
	return func(o *brokerOptions) {
		if size > 0 {
			o.buffer = size
		}
	}
}

// WithClock replaces the timestamp source for published events.
func WithClock(now func() time.Time) Option {
	return func(o *brokerOptions) { o.now = now }
}

// Broker fans events out to any number of subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses the event and the drop is
// counted.
type Broker[T any] struct {
	mu      sync.Mutex
	subs    map[*subscription[T]]struct{}
	closed  bool
	seq     uint64
	dropped atomic.Uint64
	opts    brokerOptions
}

type subscription[T any] struct {
	ch   chan Event[T]
	stop func() bool
}

// NewBroker creates a broker.
func NewBroker[T any](opts ...Option) *Broker[T] {
	o := brokerOptions{buffer: defaultBufferSize, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Broker[T]{
		subs: make(map[*subscription[T]]struct{}),
		opts: o,
	}
}

// Subscribe returns a channel that receives every event published after the
// call. The channel is closed when ctx ends or the broker is closed.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := &subscription[T]{ch: make(chan Event[T], b.opts.buffer)}
	b.subs[sub] = struct{}{}
	sub.stop = context.AfterFunc(ctx, func() { b.unsubscribe(sub) })
	return sub.ch
}

func (b *Broker[T]) unsubscribe(sub *subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
}

// Publish stamps the payload with the next sequence number and delivers it
// to every subscriber with room in its buffer. It returns the sequence
// number, or zero once the broker is closed.
func (b *Broker[T]) Publish(eventType EventType, payload T) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0
	}
	b.seq++
	event := Event[T]{
		Seq:       b.seq,
		Type:      eventType,
		Payload:   payload,
		Timestamp: b.opts.now(),
	}
	for sub := range b.subs {
		select {
		case sub.ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
	return event.Seq
}

// Close closes every subscriber channel. Later publishes are ignored and
// later subscriptions receive an already-closed channel.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		sub.stop()
		close(sub.ch)
	}
	b.subs = nil
}

// SubscriberCount returns the number of open subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Dropped returns how many deliveries were skipped because a subscriber
// was not keeping up.
func (b *Broker[T]) Dropped() uint64 {
	return b.dropped.Load()
}
