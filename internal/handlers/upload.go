package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/kordoba/internal/config"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadHandler stores admin image uploads under the configured directory and
// returns the public /uploads/ path.
type UploadHandler struct {
	dir      string
	maxBytes int64
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{dir: cfg.UploadDir, maxBytes: cfg.UploadMaxBytes}
}

// Upload accepts one multipart image file under the "file" field.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no file provided")
	}
	if file.Size > h.maxBytes {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("file too large (max %d MB)", h.maxBytes/(1024*1024)))
	}

	contentType := file.Header.Get("Content-Type")
	fallbackExt, ok := allowedImageTypes[contentType]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid type, use JPEG, PNG, WebP or GIF")
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = fallbackExt
	}
	name := uuid.NewString() + ext

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return err
	}
	if err := c.SaveFile(file, filepath.Join(h.dir, name)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"url": "/uploads/" + name}})
}
