package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleCustomer   UserRole = "customer"
	UserRoleRestaurant UserRole = "restaurant"
	UserRoleAdmin      UserRole = "admin"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// UserLocation is the saved delivery address for a user. One row per user.
type UserLocation struct {
	UserId       uuid.UUID
	AddressLabel string
	AddressText  string
	Latitude     float64
	Longitude    float64
}
