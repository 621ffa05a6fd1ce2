package service

import (
	"context"

	"github.com/Ishowar84/urban-plate-backend/internal/pkg/logger"
	"github.com/Ishowar84/urban-plate-backend/pkg/events"
	pktNats "github.com/Ishowar84/urban-plate-backend/pkg/nats"
)

const auditConsumerName = "urban-plate-audit"

// IEventAuditService consumes the order lifecycle events off the bus and
// writes them to the structured log, giving operators one durable trail of
// every placement and status transition.
type IEventAuditService interface {
	Start() error
}

type eventAuditService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewEventAuditService(subscriber *pktNats.Subscriber, log logger.ILogger) IEventAuditService {
	return &eventAuditService{
		subscriber: subscriber,
		logger:     log,
	}
}

func (s *eventAuditService) Start() error {
	return s.subscriber.Subscribe("events.>", auditConsumerName, s.handle)
}

func (s *eventAuditService) handle(ctx context.Context, event events.Event) error {
	s.logger.Info("EventAudit", "Event observed", map[string]interface{}{
		"event_type": event.EventType(),
		"payload":    event.Payload(),
	})
	return nil
}
