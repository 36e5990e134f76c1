package event

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dshills/plotview/internal/event/topic"
)

// Publisher is the narrow publish-side interface widgets depend on.
type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// Bus is a synchronous publish/subscribe event bus. Every Publish call
// delivers to all matching subscriptions, in priority order, before
// returning, so notification order exactly follows publication order.
type Bus struct {
	mu     sync.RWMutex
	subs   []*subscription
	nextID atomic.Uint64

	eventsPublished atomic.Uint64
	eventsDelivered atomic.Uint64
	handlerErrors   atomic.Uint64
	handlerPanics   atomic.Uint64

	panicHandler func(event any, recovered any)
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithPanicHandler sets a callback invoked when a handler panics.
func WithPanicHandler(fn func(event any, recovered any)) BusOption {
	return func(b *Bus) {
		b.panicHandler = fn
	}
}

// NewBus creates a new event bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe creates a new subscription for the given topic pattern.
// Safe to call concurrently.
func (b *Bus) Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if pattern == "" {
		return nil, ErrInvalidTopic
	}

	sub := newSubscription(b.nextID.Add(1), pattern, handler, opts...)

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	// Stable sort keeps registration order within a priority band.
	sort.SliceStable(b.subs, func(i, j int) bool {
		return b.subs[i].config.Priority < b.subs[j].config.Priority
	})
	b.mu.Unlock()

	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing with a function.
func (b *Bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	return b.Subscribe(pattern, fn, opts...)
}

// Unsubscribe removes a subscription. Safe to call concurrently.
func (b *Bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}

	sub.Cancel()

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == sub.ID() {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers an event synchronously to all matching handlers.
// The event must implement TopicProvider.
func (b *Bus) Publish(ctx context.Context, event any) error {
	tp, ok := event.(TopicProvider)
	if !ok || tp.EventTopic() == "" {
		return ErrInvalidEvent
	}
	eventTopic := tp.EventTopic()

	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if eventTopic.Matches(sub.topic) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	b.eventsPublished.Add(1)

	for _, sub := range matched {
		if !sub.shouldDeliver(event) {
			continue
		}

		if err := b.dispatch(ctx, event, sub.handler); err != nil {
			b.handlerErrors.Add(1)
		} else {
			b.eventsDelivered.Add(1)
		}

		if sub.config.Once {
			_ = b.Unsubscribe(sub)
		}
	}

	return nil
}

// dispatch runs one handler with panic isolation.
func (b *Bus) dispatch(ctx context.Context, event any, h Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
			if b.panicHandler != nil {
				b.panicHandler(event, r)
			}
		}
	}()
	return h.Handle(ctx, event)
}

// Stats returns current bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.eventsPublished.Load(),
		EventsDelivered:   b.eventsDelivered.Load(),
		HandlerErrors:     b.handlerErrors.Load(),
		HandlerPanics:     b.handlerPanics.Load(),
		ActiveSubscribers: active,
	}
}
