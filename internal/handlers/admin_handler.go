package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/middleware"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateRequest files an admin-access petition for the calling user.
func (h *AdminHandler) CreateRequest(c *fiber.Ctx) error {
	var req dto.AdminRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := h.adminService.CreateRequest(middleware.GetPrincipal(c), req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AdminHandler) MyRequests(c *fiber.Ctx) error {
	reqs, err := h.adminService.MyRequests(middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"requests": reqs})
}

func (h *AdminHandler) ListRequests(c *fiber.Ctx) error {
	status := models.AdminRequestStatus(c.Query("status", ""))
	reqs, err := h.adminService.ListRequests(middleware.GetPrincipal(c), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"requests": reqs})
}

func (h *AdminHandler) ReviewRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	var req dto.ReviewAdminRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	reviewed, err := h.adminService.Review(middleware.GetPrincipal(c), id, req.Approve)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviewed)
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.adminService.PlatformStats(middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
