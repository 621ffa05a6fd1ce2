package unitofwork

import (
	"context"

	"github.com/Ishowar84/urban-plate-backend/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RestaurantRepository() contract.RestaurantRepository
	OrderRepository() contract.OrderRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
