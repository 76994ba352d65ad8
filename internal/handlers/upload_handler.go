package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hopee-platform/hopee-backend/internal/storage"
)

type UploadHandler struct {
	store *storage.LocalStore
}

func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadPhoto accepts a multipart "file" field and returns {"file_url": ...}.
func (h *UploadHandler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "A file is required")
	}

	url, err := h.store.Save(fh)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return badRequest(c, "Only jpg, jpeg, png and webp files are accepted")
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"file_url": url})
}
