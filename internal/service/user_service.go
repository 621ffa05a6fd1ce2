package service

import (
	"context"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"
	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/logger"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/specification"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	SaveLocation(ctx context.Context, userId uuid.UUID, req *dto.UserLocationRequest) (*dto.UserLocationResponse, error)
	GetLocation(ctx context.Context, userId uuid.UUID) (*dto.UserLocationResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{uowFactory: uowFactory, logger: log}
}

func (s *userService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return profileResponse(user), nil
}

// UpdateProfile applies only the fields the caller provided. A changed
// username or email is checked for uniqueness first; a changed password is
// re-hashed.
func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: *req.Username})
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, apperror.Conflict("Username already taken")
		}
		user.Username = *req.Username
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: *req.Email})
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, apperror.Conflict("Email already taken")
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return profileResponse(user), nil
}

func (s *userService) SaveLocation(ctx context.Context, userId uuid.UUID, req *dto.UserLocationRequest) (*dto.UserLocationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	location := &entity.UserLocation{
		UserId:       userId,
		AddressLabel: req.AddressLabel,
		AddressText:  req.AddressText,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if err := uow.UserRepository().SaveLocation(ctx, location); err != nil {
		return nil, err
	}
	return locationResponse(location), nil
}

func (s *userService) GetLocation(ctx context.Context, userId uuid.UUID) (*dto.UserLocationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	location, err := uow.UserRepository().FindLocation(ctx, userId)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperror.NotFound("Location not set")
	}
	return locationResponse(location), nil
}

func profileResponse(user *entity.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func locationResponse(location *entity.UserLocation) *dto.UserLocationResponse {
	return &dto.UserLocationResponse{
		UserId:       location.UserId,
		AddressLabel: location.AddressLabel,
		AddressText:  location.AddressText,
		Latitude:     location.Latitude,
		Longitude:    location.Longitude,
	}
}
