package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"
	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRestaurantService answers every lookup with not-found, which is enough
// to prove that a well-formed id makes it past param validation into the
// service layer.
type stubRestaurantService struct{}

func (stubRestaurantService) Create(context.Context, uuid.UUID, *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	return nil, apperror.NotFound("Restaurant not found")
}

func (stubRestaurantService) Update(context.Context, uuid.UUID, uuid.UUID, *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	return nil, apperror.NotFound("Restaurant not found")
}

func (stubRestaurantService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return apperror.NotFound("Restaurant not found")
}

func (stubRestaurantService) Get(context.Context, uuid.UUID) (*dto.RestaurantResponse, error) {
	return nil, apperror.NotFound("Restaurant not found")
}

func (stubRestaurantService) List(context.Context) ([]*dto.RestaurantResponse, error) {
	return nil, nil
}

func (stubRestaurantService) AddMenuItem(context.Context, uuid.UUID, uuid.UUID, *dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	return nil, apperror.NotFound("Restaurant not found")
}

func (stubRestaurantService) ListMenu(context.Context, uuid.UUID) ([]*dto.MenuItemResponse, error) {
	return nil, apperror.NotFound("Restaurant not found")
}

func (stubRestaurantService) AllMenuItems(context.Context) ([]*dto.MenuItemResponse, error) {
	return nil, nil
}

// newParamTestApp wires the controllers the way the server does. The chat and
// order services stay nil on purpose: a malformed path id must be rejected
// before any service call happens.
func newParamTestApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	NewChatController(nil).RegisterRoutes(api)
	NewOrderController(nil).RegisterRoutes(api)
	NewRestaurantController(stubRestaurantService{}).RegisterRoutes(api)
	return app
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := serverutils.SignToken(jwt.MapClaims{
		"user_id":  uuid.New().String(),
		"username": "param-tester",
		"role":     "customer",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestControllersRejectMalformedIdParams(t *testing.T) {
	app := newParamTestApp()
	auth := bearerToken(t)

	cases := []struct {
		name   string
		method string
		path   string
	}{
		{"chat history", http.MethodGet, "/api/chat/not-a-uuid/history"},
		{"chat send", http.MethodPost, "/api/chat/not-a-uuid/user/send"},
		{"chat edit", http.MethodPatch, "/api/chat/message/not-a-uuid"},
		{"chat delete", http.MethodDelete, "/api/chat/message/not-a-uuid"},
		{"order show", http.MethodGet, "/api/orders/not-a-uuid"},
		{"order status", http.MethodPatch, "/api/orders/not-a-uuid/status"},
		{"restaurant show", http.MethodGet, "/api/restaurants/not-a-uuid"},
		{"restaurant menu", http.MethodGet, "/api/restaurants/not-a-uuid/menu"},
		{"restaurant update", http.MethodPatch, "/api/restaurants/not-a-uuid"},
		{"restaurant delete", http.MethodDelete, "/api/restaurants/not-a-uuid"},
		{"restaurant add item", http.MethodPost, "/api/restaurants/not-a-uuid/menu"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", auth)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "Invalid")
		})
	}
}

func TestControllersAcceptWellFormedIdParams(t *testing.T) {
	app := newParamTestApp()

	// A syntactically valid id reaches the service and gets its 404, not a
	// parse rejection.
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/"+uuid.New().String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
