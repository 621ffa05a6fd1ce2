package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemName   string    `gorm:"type:text;not null"`
	Quantity   int       `gorm:"not null"`
	CustomerId uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:text;not null;default:pending"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	// Chat rows go with the order.
	ChatMessages []ChatMessage `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}
