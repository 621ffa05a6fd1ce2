package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseIdParam resolves a uuid path parameter, rejecting malformed values
// with a 400 instead of letting a zero uuid surface as a 404 downstream.
func parseIdParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}
