package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterLoggingSubscriber attaches a zap handler to every lifecycle event
// type so writes leave a structured trace.
func RegisterLoggingSubscriber(dispatcher Dispatcher, logger *zap.Logger) {
	handler := func(_ context.Context, event Event) error {
		logger.Info("ticket event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("ticket_id", event.TicketID),
			zap.Time("timestamp", event.Timestamp),
		)
		return nil
	}

	for _, eventType := range []EventType{
		EventTicketCreated,
		EventTicketAcknowledged,
		EventTicketUpdated,
		EventTicketDeleted,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
