package events

import (
	"context"
	"errors"
	"testing"
)

func TestBusDeliversInSubscribeOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(TopicContentUpdated, func(_ context.Context, ev Event) {
		got = append(got, "first")
	})
	bus.Subscribe(TopicContentUpdated, func(_ context.Context, ev Event) {
		got = append(got, "second")
	})
	bus.Subscribe(TopicBannerUpdated, func(_ context.Context, ev Event) {
		t.Error("wrong topic delivered")
	})

	bus.Publish(context.Background(), TopicContentUpdated, ContentUpdated{Key: "k", Value: "v"})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", got)
	}
}

func TestBusPassesTypedPayload(t *testing.T) {
	bus := NewBus()
	var received OrderCreated
	bus.Subscribe(TopicOrderCreated, func(_ context.Context, ev Event) {
		received, _ = ev.Payload.(OrderCreated)
	})

	bus.Publish(context.Background(), TopicOrderCreated, OrderCreated{OrderID: "o1", Number: "DBB-1", TotalSatang: 38000})

	if received.OrderID != "o1" || received.TotalSatang != 38000 {
		t.Fatalf("payload not delivered: %+v", received)
	}
}

type failingSink struct{ err error }

func (s *failingSink) Publish(_ context.Context, _ Event) error { return s.err }

func TestBusSinkErrorsGoToErrFn(t *testing.T) {
	sinkErr := errors.New("broker down")
	var got error
	bus := NewBus().WithSink(&failingSink{err: sinkErr}, func(err error) { got = err })

	delivered := false
	bus.Subscribe(TopicBannerUpdated, func(_ context.Context, _ Event) { delivered = true })
	bus.Publish(context.Background(), TopicBannerUpdated, BannerUpdated{DisplayOrder: 2})

	if !delivered {
		t.Fatal("handler must run even when the sink fails")
	}
	if !errors.Is(got, sinkErr) {
		t.Fatalf("expected sink error surfaced, got %v", got)
	}
}

func TestBusNilErrFnDropsSinkErrors(t *testing.T) {
	bus := NewBus().WithSink(&failingSink{err: errors.New("boom")}, nil)
	// Must not panic.
	bus.Publish(context.Background(), TopicOrderCreated, OrderCreated{OrderID: "o1"})
}
