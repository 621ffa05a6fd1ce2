package controller

import (
	"github.com/Ishowar84/urban-plate-backend/internal/apperror"
	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/serverutils"
	"github.com/Ishowar84/urban-plate-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Edit(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

// RegisterRoutes attaches the JWT middleware per route rather than on the
// group: the websocket endpoint shares the /chat prefix and authenticates
// inside its own handshake.
func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Get("/:order_id/history", serverutils.JwtMiddleware, c.History)
	h.Post("/:order_id/:sender_type/send", serverutils.JwtMiddleware, c.Send)
	h.Patch("/message/:message_id", serverutils.JwtMiddleware, c.Edit)
	h.Delete("/message/:message_id", serverutils.JwtMiddleware, c.Delete)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	orderId, err := parseIdParam(ctx, "order_id")
	if err != nil {
		return err
	}

	res, err := c.chatService.GetHistory(ctx.Context(), userId, orderId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show chat history", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	orderId, err := parseIdParam(ctx, "order_id")
	if err != nil {
		return err
	}

	senderType := entity.SenderType(ctx.Params("sender_type"))
	if !senderType.Valid() {
		return apperror.New(apperror.KindConflict, "Invalid sender type")
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Send(ctx.Context(), userId, orderId, senderType, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) Edit(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	messageId, err := parseIdParam(ctx, "message_id")
	if err != nil {
		return err
	}

	var req dto.EditMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Edit(ctx.Context(), userId, messageId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success edit message", res))
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	messageId, err := parseIdParam(ctx, "message_id")
	if err != nil {
		return err
	}

	if err := c.chatService.Delete(ctx.Context(), userId, messageId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete message", fiber.Map{"id": messageId}))
}
