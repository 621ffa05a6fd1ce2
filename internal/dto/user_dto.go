package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest uses pointer fields so the service can tell "not
// provided" apart from "set to empty". Only non-nil fields are applied.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type UserLocationRequest struct {
	AddressLabel string  `json:"address_label" validate:"required"`
	AddressText  string  `json:"address_text" validate:"required"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type UserLocationResponse struct {
	UserId       uuid.UUID `json:"user_id"`
	AddressLabel string    `json:"address_label"`
	AddressText  string    `json:"address_text"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
}
