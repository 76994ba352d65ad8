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

type NGOHandler struct {
	ngoService *services.NGOService
}

func NewNGOHandler(ngoService *services.NGOService) *NGOHandler {
	return &NGOHandler{ngoService: ngoService}
}

func (h *NGOHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterNGORequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ngo, err := h.ngoService.Register(middleware.GetPrincipal(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ngo)
}

// List is the public NGO directory. ?verified=true restricts to verified
// organizations; ?city= and ?specialization= filter by declared coverage.
func (h *NGOHandler) List(c *fiber.Ctx) error {
	if city := c.Query("city", ""); city != "" {
		ngos, err := h.ngoService.ByServiceArea(city)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"ngos": ngos})
	}
	if spec := c.Query("specialization", ""); spec != "" {
		ngos, err := h.ngoService.BySpecialization(models.CaseCategory(spec))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"ngos": ngos})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	skip, _ := strconv.Atoi(c.Query("skip", "0"))
	verifiedOnly := c.Query("verified", "") == "true"

	ngos, err := h.ngoService.List(verifiedOnly, store.ListOptions{Limit: limit, Skip: skip})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ngos": ngos})
}

func (h *NGOHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid NGO ID")
	}

	ngo, err := h.ngoService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ngo)
}

func (h *NGOHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid NGO ID")
	}

	var req dto.UpdateNGORequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ngo, err := h.ngoService.UpdateProfile(middleware.GetPrincipal(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ngo)
}

func (h *NGOHandler) Verify(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid NGO ID")
	}

	var req dto.VerifyNGORequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ngo, err := h.ngoService.SetVerified(middleware.GetPrincipal(c), id, req.Verified)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ngo)
}
