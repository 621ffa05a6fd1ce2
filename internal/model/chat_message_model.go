package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage rows are hard-deleted: individually via the gateway, in bulk
// when the owning order reaches a terminal status.
type ChatMessage struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId    uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderType string    `gorm:"type:text;not null"`
	Message    string    `gorm:"type:text;not null"`
	Timestamp  string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
