package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/services"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

// respondError maps the domain error taxonomy to HTTP. Validation failures
// carry the offending field; role-gate denials distinguish "log in" (401)
// from "wrong role" (403).
func respondError(c *fiber.Ctx, err error) error {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: ve.Error(), Field: ve.Field,
		})
	}

	var fe *authz.ForbiddenError
	if errors.As(err, &fe) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: fe.Reason,
		})
	}

	switch {
	case errors.Is(err, services.ErrNoNGOProfile):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrAlreadyNGO),
		errors.Is(err, services.ErrRequestAlreadyReviewed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, authz.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Not found",
		})
	case errors.Is(err, store.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}
