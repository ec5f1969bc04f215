package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jackscave/service-desk/internal/events"
	"github.com/jackscave/service-desk/internal/observability"
)

// NotificationService writes the activity log and event metrics.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger.Named("activity"),
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketCommentAdded, n.handleTicketCommentAdded)
}

func (n *NotificationService) handleTicketCreated(_ context.Context, event events.Event) error {
	n.record(event, "TicketCreated")
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(_ context.Context, event events.Event) error {
	n.record(event, "TicketStatusChanged")
	return nil
}

func (n *NotificationService) handleTicketCommentAdded(_ context.Context, event events.Event) error {
	n.record(event, "TicketCommentAdded")
	return nil
}

func (n *NotificationService) record(event events.Event, msg string) {
	n.metrics.RecordTicketEvent(string(event.Type))
	n.logger.Info(msg,
		zap.String("event_id", event.ID),
		zap.Int64("ticket_id", event.TicketID),
		zap.String("actor", event.Actor.User),
		zap.Any("payload", event.Payload))
}
