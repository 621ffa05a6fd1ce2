package mapper

import (
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var updatedAt *time.Time
	if !msg.UpdatedAt.IsZero() {
		t := msg.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatMessage{
		Id:         msg.Id,
		OrderId:    msg.OrderId,
		SenderType: entity.SenderType(msg.SenderType),
		Message:    msg.Message,
		Timestamp:  msg.Timestamp,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	var updatedAt time.Time
	if msg.UpdatedAt != nil {
		updatedAt = *msg.UpdatedAt
	}

	return &model.ChatMessage{
		Id:         msg.Id,
		OrderId:    msg.OrderId,
		SenderType: string(msg.SenderType),
		Message:    msg.Message,
		Timestamp:  msg.Timestamp,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}
