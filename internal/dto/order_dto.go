package dto

import (
	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	ItemName string `json:"item_name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending cooking ready delivered cancelled"`
}

type OrderResponse struct {
	Id         uuid.UUID `json:"id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	CustomerId uuid.UUID `json:"customer_id"`
	Status     string    `json:"status"`
}

// CookOrderMessage is the watermill payload that schedules the cooking
// simulation for a freshly placed order.
type CookOrderMessage struct {
	OrderId uuid.UUID `json:"order_id"`
}
