package dto

import "github.com/google/uuid"

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

type EditMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

type ChatMessageResponse struct {
	Id         uuid.UUID `json:"id"`
	OrderId    uuid.UUID `json:"order_id"`
	SenderType string    `json:"sender_type"`
	Message    string    `json:"message"`
	Timestamp  string    `json:"timestamp"`
}

// Wire shapes fanned out to live connections. A broadcast is a notification
// of an already-persisted fact, never the other way around.

type ChatBroadcast struct {
	SenderType string `json:"sender_type"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

type ChatEditEvent struct {
	Event      string    `json:"event"` // always "edit"
	MessageId  uuid.UUID `json:"message_id"`
	NewMessage string    `json:"new_message"`
	Timestamp  string    `json:"timestamp"`
}

type ChatDeleteEvent struct {
	Event     string    `json:"event"` // always "delete"
	MessageId uuid.UUID `json:"message_id"`
}
