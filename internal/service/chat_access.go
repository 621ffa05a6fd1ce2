package service

import (
	"github.com/Ishowar84/urban-plate-backend/internal/entity"

	"github.com/google/uuid"
)

// ChatAccessPolicy decides who may read or write an order's chat. Closed-ness
// is a separate question from authorization: a closed chat rejects everyone,
// including the order's own customer, and callers surface it as a
// business-rule conflict rather than a permission failure.
type ChatAccessPolicy struct{}

func NewChatAccessPolicy() *ChatAccessPolicy {
	return &ChatAccessPolicy{}
}

// CanAccess grants chat read access only to the order's customer.
// TODO: restaurant owners are the other party of every order chat but are
// rejected here; granting them access needs the order->restaurant link that
// the orders table does not carry yet.
func (p *ChatAccessPolicy) CanAccess(order *entity.Order, principalId uuid.UUID) bool {
	return order.CustomerId == principalId
}

// CanWrite mirrors CanAccess; the policy makes no read/write distinction.
func (p *ChatAccessPolicy) CanWrite(order *entity.Order, principalId uuid.UUID) bool {
	return order.CustomerId == principalId
}

// Closed reports whether the chat is permanently closed for the order.
func (p *ChatAccessPolicy) Closed(order *entity.Order) bool {
	return order.Status.IsTerminal()
}
