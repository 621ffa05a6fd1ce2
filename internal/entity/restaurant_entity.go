package entity

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	Id          uuid.UUID
	Name        string
	CuisineType string
	Rating      float64
	IsOpen      bool
	Latitude    float64
	Longitude   float64
	OwnerId     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type MenuItem struct {
	Id           uuid.UUID
	Name         string
	Description  string
	Price        float64
	RestaurantId uuid.UUID
	CreatedAt    time.Time
}
