package service

import (
	"context"
	"encoding/json"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"
	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/logger"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/specification"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/unitofwork"
	"github.com/Ishowar84/urban-plate-backend/pkg/events"

	"github.com/google/uuid"
)

// EventPublisher is the outbound bus surface. Satisfied by pkg/nats.Publisher;
// wiring may leave it nil when the bus is unavailable.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IOrderService interface {
	Place(ctx context.Context, customerId uuid.UUID, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, principalId, orderId uuid.UUID) (*dto.OrderResponse, error)
	ListMine(ctx context.Context, customerId uuid.UUID) ([]*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, orderId uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
}

type orderService struct {
	uowFactory     unitofwork.RepositoryFactory
	publisher      IPublisherService
	eventPublisher EventPublisher
	chatService    IChatService
	logger         logger.ILogger
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	eventPublisher EventPublisher,
	chatService IChatService,
	log logger.ILogger,
) IOrderService {
	return &orderService{
		uowFactory:     uowFactory,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		chatService:    chatService,
		logger:         log,
	}
}

func (s *orderService) Place(ctx context.Context, customerId uuid.UUID, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order := &entity.Order{
		Id:         uuid.New(),
		ItemName:   req.ItemName,
		Quantity:   req.Quantity,
		CustomerId: customerId,
		Status:     entity.OrderStatusPending,
	}
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	// Schedule the cooking simulation. The order is already durable; a
	// publish failure only means nobody cooks it, which is logged.
	payload, err := json.Marshal(dto.CookOrderMessage{OrderId: order.Id})
	if err != nil {
		return nil, err
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Error("OrderService", "Failed to schedule cooking simulation", map[string]interface{}{
			"order_id": order.Id,
			"error":    err.Error(),
		})
	}

	s.publishEvent(ctx, events.NewOrderPlaced(order.Id.String(), customerId.String(), order.ItemName, order.Quantity))

	s.logger.Info("OrderService", "Order placed", map[string]interface{}{
		"order_id":    order.Id,
		"customer_id": customerId,
	})
	return orderResponse(order), nil
}

func (s *orderService) Get(ctx context.Context, principalId, orderId uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NotFound("Order not found")
	}
	if order.CustomerId != principalId {
		return nil, apperror.Authorization("Not your order")
	}
	return orderResponse(order), nil
}

func (s *orderService) ListMine(ctx context.Context, customerId uuid.UUID) ([]*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.ByCustomerID{CustomerID: customerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = orderResponse(order)
	}
	return responses, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderId uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	status := entity.OrderStatus(req.Status)
	if !status.Valid() {
		return nil, apperror.New(apperror.KindConflict, "Invalid status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NotFound("Order not found")
	}

	order.Status = status
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	// The chat side reacts after the transition is durable. A terminal
	// status wipes the order's chat history.
	if err := s.chatService.OnOrderStatusChanged(ctx, order); err != nil {
		s.logger.Error("OrderService", "Chat cleanup failed after status change", map[string]interface{}{
			"order_id": order.Id,
			"status":   order.Status,
			"error":    err.Error(),
		})
	}

	s.publishEvent(ctx, events.NewOrderStatusChanged(order.Id.String(), string(order.Status)))

	s.logger.Info("OrderService", "Order status updated", map[string]interface{}{
		"order_id": order.Id,
		"status":   order.Status,
	})
	return orderResponse(order), nil
}

func (s *orderService) publishEvent(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("OrderService", "Failed to publish event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}
}

func orderResponse(order *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		Id:         order.Id,
		ItemName:   order.ItemName,
		Quantity:   order.Quantity,
		CustomerId: order.CustomerId,
		Status:     string(order.Status),
	}
}
