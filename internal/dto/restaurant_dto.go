package dto

import "github.com/google/uuid"

type CreateRestaurantRequest struct {
	Name        string  `json:"name" validate:"required"`
	CuisineType string  `json:"cuisine_type" validate:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// UpdateRestaurantRequest is a typed partial update: nil means the field was
// not provided and keeps its current value.
type UpdateRestaurantRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	CuisineType *string  `json:"cuisine_type"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsOpen      *bool    `json:"is_open"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type RestaurantResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CuisineType string    `json:"cuisine_type"`
	Rating      float64   `json:"rating"`
	IsOpen      bool      `json:"is_open"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerId     uuid.UUID `json:"owner_id"`
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type MenuItemResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	RestaurantName string    `json:"restaurant_name"`
}
