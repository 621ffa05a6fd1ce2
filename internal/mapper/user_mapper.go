package mapper

import (
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:           u.Id,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entity.UserRole(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:           u.Id,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *UserMapper) LocationToEntity(l *model.UserLocation) *entity.UserLocation {
	if l == nil {
		return nil
	}
	return &entity.UserLocation{
		UserId:       l.UserId,
		AddressLabel: l.AddressLabel,
		AddressText:  l.AddressText,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
	}
}

func (m *UserMapper) LocationToModel(l *entity.UserLocation) *model.UserLocation {
	if l == nil {
		return nil
	}
	return &model.UserLocation{
		UserId:       l.UserId,
		AddressLabel: l.AddressLabel,
		AddressText:  l.AddressText,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
	}
}
