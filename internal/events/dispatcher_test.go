package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventTicketCreated, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	event := Event{ID: "ev-1", Type: EventTicketCreated, TicketID: "t1"}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(received) != 1 || received[0].ID != "ev-1" {
		t.Fatalf("received = %v, want ev-1", received)
	}
}

func TestDispatcherIgnoresUnrelatedEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	calls := 0
	dispatcher.Subscribe(EventTicketDeleted, func(context.Context, Event) error {
		calls++
		return nil
	})

	_ = dispatcher.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: "t1"})
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventTicketUpdated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	calls := 0
	dispatcher.Subscribe(EventTicketUpdated, func(context.Context, Event) error {
		calls++
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventTicketUpdated, TicketID: "t1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
