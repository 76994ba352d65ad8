package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/middleware"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/services"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	msg, err := h.contactService.Create(middleware.GetPrincipal(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	skip, _ := strconv.Atoi(c.Query("skip", "0"))
	status := models.ContactStatus(c.Query("status", ""))

	msgs, err := h.contactService.List(middleware.GetPrincipal(c), status, store.ListOptions{Limit: limit, Skip: skip})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"messages": msgs})
}

func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid message ID")
	}

	var req dto.UpdateContactStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	msg, err := h.contactService.UpdateStatus(middleware.GetPrincipal(c), id, models.ContactStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(msg)
}
