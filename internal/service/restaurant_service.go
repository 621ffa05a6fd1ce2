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
)

type IRestaurantService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	Update(ctx context.Context, principalId, restaurantId uuid.UUID, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error)
	Delete(ctx context.Context, principalId, restaurantId uuid.UUID) error
	Get(ctx context.Context, restaurantId uuid.UUID) (*dto.RestaurantResponse, error)
	List(ctx context.Context) ([]*dto.RestaurantResponse, error)

	AddMenuItem(ctx context.Context, principalId, restaurantId uuid.UUID, req *dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error)
	ListMenu(ctx context.Context, restaurantId uuid.UUID) ([]*dto.MenuItemResponse, error)
	AllMenuItems(ctx context.Context) ([]*dto.MenuItemResponse, error)
}

type restaurantService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewRestaurantService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IRestaurantService {
	return &restaurantService{uowFactory: uowFactory, logger: log}
}

func (s *restaurantService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant := &entity.Restaurant{
		Id:          uuid.New(),
		Name:        req.Name,
		CuisineType: req.CuisineType,
		IsOpen:      true,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerId:     ownerId,
	}
	if err := uow.RestaurantRepository().Create(ctx, restaurant); err != nil {
		return nil, err
	}

	s.logger.Info("RestaurantService", "Restaurant created", map[string]interface{}{
		"restaurant_id": restaurant.Id,
		"owner_id":      ownerId,
	})
	return restaurantResponse(restaurant), nil
}

func (s *restaurantService) Update(ctx context.Context, principalId, restaurantId uuid.UUID, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := s.loadOwned(ctx, uow, principalId, restaurantId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.CuisineType != nil {
		restaurant.CuisineType = *req.CuisineType
	}
	if req.Rating != nil {
		restaurant.Rating = *req.Rating
	}
	if req.IsOpen != nil {
		restaurant.IsOpen = *req.IsOpen
	}
	if req.Latitude != nil {
		restaurant.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		restaurant.Longitude = *req.Longitude
	}

	if err := uow.RestaurantRepository().Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurantResponse(restaurant), nil
}

func (s *restaurantService) Delete(ctx context.Context, principalId, restaurantId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := s.loadOwned(ctx, uow, principalId, restaurantId)
	if err != nil {
		return err
	}
	return uow.RestaurantRepository().Delete(ctx, restaurant.Id)
}

func (s *restaurantService) Get(ctx context.Context, restaurantId uuid.UUID) (*dto.RestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: restaurantId})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NotFound("Restaurant not found")
	}
	return restaurantResponse(restaurant), nil
}

func (s *restaurantService) List(ctx context.Context) ([]*dto.RestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurants, err := uow.RestaurantRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		responses[i] = restaurantResponse(restaurant)
	}
	return responses, nil
}

func (s *restaurantService) AddMenuItem(ctx context.Context, principalId, restaurantId uuid.UUID, req *dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := s.loadOwned(ctx, uow, principalId, restaurantId)
	if err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Id:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		RestaurantId: restaurant.Id,
	}
	if err := uow.RestaurantRepository().CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return menuItemResponse(item, restaurant.Name), nil
}

func (s *restaurantService) ListMenu(ctx context.Context, restaurantId uuid.UUID) ([]*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: restaurantId})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NotFound("Restaurant not found")
	}

	items, err := uow.RestaurantRepository().FindMenuItems(ctx, specification.ByRestaurantID{RestaurantID: restaurantId})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = menuItemResponse(item, restaurant.Name)
	}
	return responses, nil
}

// AllMenuItems is the public browse feed: every item across every
// restaurant, each tagged with its restaurant's name.
func (s *restaurantService) AllMenuItems(ctx context.Context) ([]*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurants, err := uow.RestaurantRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(restaurants))
	for _, restaurant := range restaurants {
		names[restaurant.Id] = restaurant.Name
	}

	items, err := uow.RestaurantRepository().FindMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = menuItemResponse(item, names[item.RestaurantId])
	}
	return responses, nil
}

func (s *restaurantService) loadOwned(ctx context.Context, uow unitofwork.UnitOfWork, principalId, restaurantId uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: restaurantId})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NotFound("Restaurant not found")
	}
	if restaurant.OwnerId != principalId {
		return nil, apperror.Authorization("Not the restaurant owner")
	}
	return restaurant, nil
}

func restaurantResponse(restaurant *entity.Restaurant) *dto.RestaurantResponse {
	return &dto.RestaurantResponse{
		Id:          restaurant.Id,
		Name:        restaurant.Name,
		CuisineType: restaurant.CuisineType,
		Rating:      restaurant.Rating,
		IsOpen:      restaurant.IsOpen,
		Latitude:    restaurant.Latitude,
		Longitude:   restaurant.Longitude,
		OwnerId:     restaurant.OwnerId,
	}
}

func menuItemResponse(item *entity.MenuItem, restaurantName string) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		Id:             item.Id,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price,
		RestaurantName: restaurantName,
	}
}
