package controller

import (
	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/serverutils"
	"github.com/Ishowar84/urban-plate-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRestaurantController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	AddMenuItem(ctx *fiber.Ctx) error
	ShowMenu(ctx *fiber.Ctx) error
	AllMenuItems(ctx *fiber.Ctx) error
}

type restaurantController struct {
	restaurantService service.IRestaurantService
}

func NewRestaurantController(restaurantService service.IRestaurantService) IRestaurantController {
	return &restaurantController{
		restaurantService: restaurantService,
	}
}

func (c *restaurantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/restaurants")

	// Public browse feeds. Registered before :id so "menu" is not
	// swallowed by the param route.
	h.Get("", c.List)
	h.Get("/menu/all", c.AllMenuItems)
	h.Get("/:id/menu", c.ShowMenu)
	h.Get("/:id", c.Show)

	protected := r.Group("/restaurants")
	protected.Use(serverutils.JwtMiddleware)
	protected.Post("", c.Create)
	protected.Patch("/:id", c.Update)
	protected.Delete("/:id", c.Delete)
	protected.Post("/:id/menu", c.AddMenuItem)
}

func (c *restaurantController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateRestaurantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.restaurantService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create restaurant", res))
}

func (c *restaurantController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateRestaurantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.restaurantService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update restaurant", res))
}

func (c *restaurantController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.restaurantService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete restaurant", fiber.Map{"id": id}))
}

func (c *restaurantController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.restaurantService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show restaurant", res))
}

func (c *restaurantController) List(ctx *fiber.Ctx) error {
	res, err := c.restaurantService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list restaurants", res))
}

func (c *restaurantController) AddMenuItem(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CreateMenuItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.restaurantService.AddMenuItem(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add menu item", res))
}

func (c *restaurantController) ShowMenu(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.restaurantService.ListMenu(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show menu", res))
}

func (c *restaurantController) AllMenuItems(ctx *fiber.Ctx) error {
	res, err := c.restaurantService.AllMenuItems(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list menu items", res))
}
