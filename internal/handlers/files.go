package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"campusshare/internal/blob"
)

// FileHandler serves blob downloads through signed URLs.
type FileHandler struct {
	blobs  *blob.Store
	signer *blob.Signer
}

// NewFileHandler creates a new file handler.
func NewFileHandler(blobs *blob.Store, signer *blob.Signer) *FileHandler {
	return &FileHandler{blobs: blobs, signer: signer}
}

// Download streams a blob to the client. The signature covers the blob id and
// expiry, so the link works without a session until it expires.
func (h *FileHandler) Download(c fiber.Ctx) error {
	id := c.Params("id")

	exp, err := strconv.ParseInt(c.Query("exp"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid expiry")
	}

	if !h.signer.Verify(id, exp, c.Query("sig")) {
		return fiber.NewError(fiber.StatusForbidden, "link expired or invalid")
	}

	data, filename, err := h.blobs.Download(c.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "file not found")
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
