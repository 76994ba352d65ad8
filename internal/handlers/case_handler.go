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

type CaseHandler struct {
	caseService *services.CaseService
}

func NewCaseHandler(caseService *services.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := h.caseService.Create(middleware.GetPrincipal(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CaseHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	skip, _ := strconv.Atoi(c.Query("skip", "0"))
	if limit > 100 {
		limit = 100
	}

	filter := store.CaseFilter{
		Status:    models.CaseStatus(c.Query("status", "")),
		Category:  models.CaseCategory(c.Query("category", "")),
		City:      c.Query("city", ""),
		CreatedBy: c.Query("created_by", ""),
	}

	cases, err := h.caseService.List(middleware.GetPrincipal(c), filter, store.ListOptions{Limit: limit, Skip: skip})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"cases": cases, "limit": limit, "skip": skip})
}

// Mine lists the cases the calling user reported.
func (h *CaseHandler) Mine(c *fiber.Ctx) error {
	cases, err := h.caseService.MyCases(middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"cases": cases})
}

func (h *CaseHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid case ID")
	}

	found, err := h.caseService.Get(middleware.GetPrincipal(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(found)
}

func (h *CaseHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid case ID")
	}

	var req dto.UpdateCaseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.caseService.UpdateStatus(middleware.GetPrincipal(c), id,
		models.CaseStatus(req.Status), req.ResolutionNotes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *CaseHandler) Claim(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid case ID")
	}

	updated, err := h.caseService.Claim(middleware.GetPrincipal(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *CaseHandler) Unclaim(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid case ID")
	}

	updated, err := h.caseService.Unclaim(middleware.GetPrincipal(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid case ID")
	}

	if err := h.caseService.Delete(middleware.GetPrincipal(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Case deleted"})
}

// Dashboard serves the NGO dashboard buckets and counts.
func (h *CaseHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.caseService.Dashboard(middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
