package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:text;not null;uniqueIndex"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	Role         string    `gorm:"type:text;not null;default:customer"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserLocation struct {
	UserId       uuid.UUID `gorm:"type:uuid;primaryKey"`
	AddressLabel string    `gorm:"type:text"`
	AddressText  string    `gorm:"type:text"`
	Latitude     float64
	Longitude    float64
}

func (UserLocation) TableName() string {
	return "user_locations"
}
