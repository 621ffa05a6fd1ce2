package model

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:text;not null;index"`
	CuisineType string    `gorm:"type:text"`
	Rating      float64   `gorm:"default:0"`
	IsOpen      bool      `gorm:"default:true"`
	Latitude    float64
	Longitude   float64
	OwnerId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	MenuItems []MenuItem `gorm:"foreignKey:RestaurantId;constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

type MenuItem struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:text;not null;index"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"not null"`
	RestaurantId uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantId"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
