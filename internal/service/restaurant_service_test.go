package service

import (
	"context"
	"testing"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"
	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRestaurantRepo struct {
	restaurants map[uuid.UUID]*entity.Restaurant
	menuItems   []*entity.MenuItem
}

func (r *fakeRestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	r.restaurants[restaurant.Id] = restaurant
	return nil
}

func (r *fakeRestaurantRepo) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	r.restaurants[restaurant.Id] = restaurant
	return nil
}

func (r *fakeRestaurantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.restaurants, id)
	return nil
}

func (r *fakeRestaurantRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			if restaurant, found := r.restaurants[byId.ID]; found {
				return restaurant, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeRestaurantRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error) {
	var all []*entity.Restaurant
	for _, restaurant := range r.restaurants {
		all = append(all, restaurant)
	}
	return all, nil
}

func (r *fakeRestaurantRepo) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	r.menuItems = append(r.menuItems, item)
	return nil
}

func (r *fakeRestaurantRepo) FindMenuItems(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error) {
	for _, spec := range specs {
		if byRestaurant, ok := spec.(specification.ByRestaurantID); ok {
			var matched []*entity.MenuItem
			for _, item := range r.menuItems {
				if item.RestaurantId == byRestaurant.RestaurantID {
					matched = append(matched, item)
				}
			}
			return matched, nil
		}
	}
	return r.menuItems, nil
}

func newRestaurantFixture() (IRestaurantService, *fakeRestaurantRepo) {
	repo := &fakeRestaurantRepo{restaurants: make(map[uuid.UUID]*entity.Restaurant)}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{
		orders:      &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)},
		chats:       &fakeChatRepo{},
		restaurants: repo,
	}}
	return NewRestaurantService(factory, &nopLogger{}), repo
}

func TestRestaurantServicePartialUpdate(t *testing.T) {
	service, _ := newRestaurantFixture()
	owner := uuid.New()

	created, err := service.Create(context.Background(), owner, &dto.CreateRestaurantRequest{
		Name:        "Warung Bu Sri",
		CuisineType: "Indonesian",
		Latitude:    -6.2,
		Longitude:   106.8,
	})
	require.NoError(t, err)
	assert.True(t, created.IsOpen)

	closed := false
	rating := 4.5
	updated, err := service.Update(context.Background(), owner, created.Id, &dto.UpdateRestaurantRequest{
		IsOpen: &closed,
		Rating: &rating,
	})
	require.NoError(t, err)

	// Untouched fields keep their values.
	assert.Equal(t, "Warung Bu Sri", updated.Name)
	assert.Equal(t, "Indonesian", updated.CuisineType)
	assert.Equal(t, -6.2, updated.Latitude)
	assert.False(t, updated.IsOpen)
	assert.Equal(t, 4.5, updated.Rating)
}

func TestRestaurantServiceOwnerOnlyMutations(t *testing.T) {
	service, _ := newRestaurantFixture()
	owner := uuid.New()

	created, err := service.Create(context.Background(), owner, &dto.CreateRestaurantRequest{
		Name:        "Pho Corner",
		CuisineType: "Vietnamese",
	})
	require.NoError(t, err)

	stranger := uuid.New()
	name := "Hijacked"
	_, err = service.Update(context.Background(), stranger, created.Id, &dto.UpdateRestaurantRequest{Name: &name})
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))

	err = service.Delete(context.Background(), stranger, created.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))

	_, err = service.AddMenuItem(context.Background(), stranger, created.Id, &dto.CreateMenuItemRequest{
		Name:  "Pho Bo",
		Price: 9.5,
	})
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))

	_, err = service.Update(context.Background(), owner, uuid.New(), &dto.UpdateRestaurantRequest{Name: &name})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRestaurantServiceMenuFeed(t *testing.T) {
	service, _ := newRestaurantFixture()
	owner := uuid.New()

	first, err := service.Create(context.Background(), owner, &dto.CreateRestaurantRequest{
		Name:        "Taco Loco",
		CuisineType: "Mexican",
	})
	require.NoError(t, err)
	second, err := service.Create(context.Background(), owner, &dto.CreateRestaurantRequest{
		Name:        "Sushi Go",
		CuisineType: "Japanese",
	})
	require.NoError(t, err)

	_, err = service.AddMenuItem(context.Background(), owner, first.Id, &dto.CreateMenuItemRequest{
		Name: "Carnitas", Price: 8.0,
	})
	require.NoError(t, err)
	_, err = service.AddMenuItem(context.Background(), owner, second.Id, &dto.CreateMenuItemRequest{
		Name: "Salmon Nigiri", Price: 12.0,
	})
	require.NoError(t, err)

	menu, err := service.ListMenu(context.Background(), first.Id)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Taco Loco", menu[0].RestaurantName)

	feed, err := service.AllMenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 2)
	names := map[string]string{}
	for _, item := range feed {
		names[item.Name] = item.RestaurantName
	}
	assert.Equal(t, "Taco Loco", names["Carnitas"])
	assert.Equal(t, "Sushi Go", names["Salmon Nigiri"])
}
