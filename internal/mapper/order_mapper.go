package mapper

import (
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Order{
		Id:         o.Id,
		ItemName:   o.ItemName,
		Quantity:   o.Quantity,
		CustomerId: o.CustomerId,
		Status:     entity.OrderStatus(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Order{
		Id:         o.Id,
		ItemName:   o.ItemName,
		Quantity:   o.Quantity,
		CustomerId: o.CustomerId,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}
