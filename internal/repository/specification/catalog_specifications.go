package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByOwnerID struct {
	OwnerID uuid.UUID
}

func (s ByOwnerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

type ByRestaurantID struct {
	RestaurantID uuid.UUID
}

func (s ByRestaurantID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("restaurant_id = ?", s.RestaurantID)
}

type ByCustomerID struct {
	CustomerID uuid.UUID
}

func (s ByCustomerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}
