package implementation

import (
	"context"
	"errors"

	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/mapper"
	"github.com/Ishowar84/urban-plate-backend/internal/model"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/contract"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewRestaurantRepository(db *gorm.DB) contract.RestaurantRepository {
	return &RestaurantRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *RestaurantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RestaurantRepositoryImpl) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	m := r.mapper.RestaurantToModel(restaurant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*restaurant = *r.mapper.RestaurantToEntity(m)
	return nil
}

func (r *RestaurantRepositoryImpl) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	m := r.mapper.RestaurantToModel(restaurant)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*restaurant = *r.mapper.RestaurantToEntity(m)
	return nil
}

func (r *RestaurantRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Restaurant{}, id).Error
}

func (r *RestaurantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error) {
	var m model.Restaurant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RestaurantToEntity(&m), nil
}

func (r *RestaurantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error) {
	var models []*model.Restaurant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Restaurant, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RestaurantToEntity(m)
	}
	return entities, nil
}

func (r *RestaurantRepositoryImpl) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	m := r.mapper.MenuItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.MenuItemToEntity(m)
	return nil
}

func (r *RestaurantRepositoryImpl) FindMenuItems(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error) {
	var models []*model.MenuItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MenuItem, len(models))
	for i, m := range models {
		entities[i] = r.mapper.MenuItemToEntity(m)
	}
	return entities, nil
}
