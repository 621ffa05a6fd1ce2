package service

import (
	"context"
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"
	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/logger"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/specification"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Broadcaster is the registry surface the gateway needs. Kept to one method
// so tests can swap a fake in.
type Broadcaster interface {
	Broadcast(orderId uuid.UUID, payload interface{})
}

type IChatService interface {
	GetHistory(ctx context.Context, principalId, orderId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	Send(ctx context.Context, principalId, orderId uuid.UUID, senderType entity.SenderType, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	Edit(ctx context.Context, principalId, messageId uuid.UUID, req *dto.EditMessageRequest) (*dto.ChatMessageResponse, error)
	Delete(ctx context.Context, principalId, messageId uuid.UUID) error

	// AuthorizeStream runs the handshake checks for a streaming connection
	// and resolves the order it will be bound to.
	AuthorizeStream(ctx context.Context, principalId, orderId uuid.UUID) (*entity.Order, error)
	// StreamInbound persists one frame received on an open stream and fans it
	// out. Authorization already happened at the handshake.
	StreamInbound(ctx context.Context, orderId uuid.UUID, senderType entity.SenderType, text string) error

	// OnOrderStatusChanged is invoked by the order side after a status
	// change is persisted. A terminal status wipes the order's history.
	OnOrderStatusChanged(ctx context.Context, order *entity.Order) error
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	broadcaster Broadcaster
	policy      *ChatAccessPolicy
	logger      logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, broadcaster Broadcaster, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		policy:      NewChatAccessPolicy(),
		logger:      log,
	}
}

// loadOpenOrder resolves an order and applies the access policy in the fixed
// sequence: existence, then authorization, then closed-ness.
func (s *chatService) loadOpenOrder(ctx context.Context, uow unitofwork.UnitOfWork, principalId, orderId uuid.UUID) (*entity.Order, error) {
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NotFound("Order not found")
	}
	if !s.policy.CanAccess(order, principalId) {
		return nil, apperror.Authorization("Not authorized to view this chat")
	}
	if s.policy.Closed(order) {
		return nil, apperror.Conflict("Chat is closed")
	}
	return order, nil
}

func (s *chatService) GetHistory(ctx context.Context, principalId, orderId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.loadOpenOrder(ctx, uow, principalId, orderId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByOrderID{OrderID: orderId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = messageResponse(msg)
	}
	return responses, nil
}

func (s *chatService) Send(ctx context.Context, principalId, orderId uuid.UUID, senderType entity.SenderType, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.loadOpenOrder(ctx, uow, principalId, orderId); err != nil {
		return nil, err
	}

	msg, err := s.persistAndBroadcast(ctx, uow, orderId, senderType, req.Message)
	if err != nil {
		return nil, err
	}
	return messageResponse(msg), nil
}

func (s *chatService) Edit(ctx context.Context, principalId, messageId uuid.UUID, req *dto.EditMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg, order, err := s.loadOwnedMessage(ctx, uow, principalId, messageId)
	if err != nil {
		return nil, err
	}

	msg.Message = req.Message
	if err := uow.ChatMessageRepository().Update(ctx, msg); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(order.Id, dto.ChatEditEvent{
		Event:      "edit",
		MessageId:  msg.Id,
		NewMessage: msg.Message,
		Timestamp:  msg.Timestamp,
	})
	return messageResponse(msg), nil
}

func (s *chatService) Delete(ctx context.Context, principalId, messageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg, order, err := s.loadOwnedMessage(ctx, uow, principalId, messageId)
	if err != nil {
		return err
	}

	if err := uow.ChatMessageRepository().Delete(ctx, msg.Id); err != nil {
		return err
	}

	s.broadcaster.Broadcast(order.Id, dto.ChatDeleteEvent{
		Event:     "delete",
		MessageId: msg.Id,
	})
	return nil
}

func (s *chatService) AuthorizeStream(ctx context.Context, principalId, orderId uuid.UUID) (*entity.Order, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.loadOpenOrder(ctx, uow, principalId, orderId)
}

func (s *chatService) StreamInbound(ctx context.Context, orderId uuid.UUID, senderType entity.SenderType, text string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	_, err := s.persistAndBroadcast(ctx, uow, orderId, senderType, text)
	return err
}

func (s *chatService) OnOrderStatusChanged(ctx context.Context, order *entity.Order) error {
	if !order.Status.IsTerminal() {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	purged, err := uow.ChatMessageRepository().Count(ctx, specification.ByOrderID{OrderID: order.Id})
	if err != nil {
		return err
	}
	if err := uow.ChatMessageRepository().DeleteByOrderId(ctx, order.Id); err != nil {
		return err
	}
	s.logger.Info("ChatService", "Chat history wiped for closed order", map[string]interface{}{
		"order_id": order.Id,
		"status":   order.Status,
		"purged":   purged,
	})
	return nil
}

// persistAndBroadcast writes the row, then notifies live connections.
// Always in that sequence: a broadcast announces an already durable fact.
func (s *chatService) persistAndBroadcast(ctx context.Context, uow unitofwork.UnitOfWork, orderId uuid.UUID, senderType entity.SenderType, text string) (*entity.ChatMessage, error) {
	msg := &entity.ChatMessage{
		Id:         uuid.New(),
		OrderId:    orderId,
		SenderType: senderType,
		Message:    text,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(orderId, dto.ChatBroadcast{
		SenderType: string(msg.SenderType),
		Message:    msg.Message,
		Timestamp:  msg.Timestamp,
	})
	return msg, nil
}

// loadOwnedMessage resolves a message and checks the acting principal against
// the owning order's customer. The message's own sender side is deliberately
// not consulted: the customer may edit or delete restaurant-attributed lines
// in their order's chat, and nobody else may touch either kind.
func (s *chatService) loadOwnedMessage(ctx context.Context, uow unitofwork.UnitOfWork, principalId, messageId uuid.UUID) (*entity.ChatMessage, *entity.Order, error) {
	msg, err := uow.ChatMessageRepository().FindOne(ctx, specification.ByID{ID: messageId})
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, apperror.NotFound("Message not found")
	}

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: msg.OrderId})
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, apperror.NotFound("Order not found")
	}
	if order.CustomerId != principalId {
		return nil, nil, apperror.Authorization("Not authorized")
	}
	return msg, order, nil
}

func messageResponse(msg *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:         msg.Id,
		OrderId:    msg.OrderId,
		SenderType: string(msg.SenderType),
		Message:    msg.Message,
		Timestamp:  msg.Timestamp,
	}
}
