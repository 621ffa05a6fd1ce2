package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByOrderID struct {
	OrderID uuid.UUID
}

func (s ByOrderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_id = ?", s.OrderID)
}
