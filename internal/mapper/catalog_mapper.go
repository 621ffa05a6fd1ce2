package mapper

import (
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) RestaurantToEntity(r *model.Restaurant) *entity.Restaurant {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Restaurant{
		Id:          r.Id,
		Name:        r.Name,
		CuisineType: r.CuisineType,
		Rating:      r.Rating,
		IsOpen:      r.IsOpen,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		OwnerId:     r.OwnerId,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CatalogMapper) RestaurantToModel(r *entity.Restaurant) *model.Restaurant {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Restaurant{
		Id:          r.Id,
		Name:        r.Name,
		CuisineType: r.CuisineType,
		Rating:      r.Rating,
		IsOpen:      r.IsOpen,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		OwnerId:     r.OwnerId,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CatalogMapper) MenuItemToEntity(i *model.MenuItem) *entity.MenuItem {
	if i == nil {
		return nil
	}
	return &entity.MenuItem{
		Id:           i.Id,
		Name:         i.Name,
		Description:  i.Description,
		Price:        i.Price,
		RestaurantId: i.RestaurantId,
		CreatedAt:    i.CreatedAt,
	}
}

func (m *CatalogMapper) MenuItemToModel(i *entity.MenuItem) *model.MenuItem {
	if i == nil {
		return nil
	}
	return &model.MenuItem{
		Id:           i.Id,
		Name:         i.Name,
		Description:  i.Description,
		Price:        i.Price,
		RestaurantId: i.RestaurantId,
		CreatedAt:    i.CreatedAt,
	}
}
