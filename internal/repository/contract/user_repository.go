package contract

import (
	"context"

	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)

	SaveLocation(ctx context.Context, location *entity.UserLocation) error
	FindLocation(ctx context.Context, userId uuid.UUID) (*entity.UserLocation, error)
}
