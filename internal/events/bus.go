package events

import (
	"context"
	"sync"
)

// Event names carried by the bus.
const (
	TopicContentUpdated  = "content.updated"
	TopicBrandingUpdated = "branding.updated"
	TopicBannerUpdated   = "banner.updated"
	TopicOrderCreated    = "order.created"
)

type ContentUpdated struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type BrandingUpdated struct {
	Keys []string `json:"keys"`
}

type BannerUpdated struct {
	DisplayOrder int `json:"displayOrder"`
}

type OrderCreated struct {
	OrderID     string `json:"orderId"`
	Number      string `json:"number"`
	TotalSatang int64  `json:"totalSatang"`
}

// Event pairs a topic with its typed payload.
type Event struct {
	Topic   string
	Payload any
}

// Handler receives events for the topics it subscribed to. Handlers run
// synchronously in publish order.
type Handler func(ctx context.Context, ev Event)

// Sink forwards published events outside the process. Sink failures
// must not affect the publisher.
type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

// Bus is an in-process typed publish/subscribe dispatcher. Components
// that used to poke each other through ad-hoc notifications subscribe
// here instead and get compile-time-checked payloads.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	sink     Sink
	onErr    func(error)
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// WithSink attaches an external sink, e.g. a Kafka producer. The errFn
// is called with sink failures; pass nil to drop them.
func (b *Bus) WithSink(s Sink, errFn func(error)) *Bus {
	b.sink = s
	b.onErr = errFn
	return b
}

func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

func (b *Bus) Publish(ctx context.Context, topic string, payload any) {
	ev := Event{Topic: topic, Payload: payload}

	b.mu.RLock()
	subs := b.handlers[topic]
	sink := b.sink
	b.mu.RUnlock()

	for _, h := range subs {
		h(ctx, ev)
	}
	if sink != nil {
		if err := sink.Publish(ctx, ev); err != nil && b.onErr != nil {
			b.onErr(err)
		}
	}
}
