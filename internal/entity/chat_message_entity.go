package entity

import (
	"time"

	"github.com/google/uuid"
)

type SenderType string

const (
	SenderTypeUser       SenderType = "user"
	SenderTypeRestaurant SenderType = "restaurant"
)

func (s SenderType) Valid() bool {
	return s == SenderTypeUser || s == SenderTypeRestaurant
}

// ChatMessage is one line of an order's chat. Timestamp is the RFC3339
// creation instant exposed over the wire; CreatedAt is the row bookkeeping.
type ChatMessage struct {
	Id         uuid.UUID
	OrderId    uuid.UUID
	SenderType SenderType
	Message    string
	Timestamp  string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
