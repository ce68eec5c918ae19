package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/storage"
)

// maxUploadBytes caps one image upload.
const maxUploadBytes = 10 << 20

// UploadHandler stores uploaded images and hands back their public URLs.
type UploadHandler struct {
	store *storage.Local
}

// NewUploadHandler builds the handler.
func NewUploadHandler(store *storage.Local) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadResponse is the stored object's path and URL.
type UploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Upload accepts one multipart file under "file" and stores it in the bucket
// named by the route parameter.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file field is required"})
	}
	if fh.Size > maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "TOO_LARGE", Message: "file exceeds the upload limit"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, err)
	}
	path, err := h.store.SaveObject(bucket, fh.Filename, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(UploadResponse{
		Path: path,
		URL:  h.store.PublicURL(path),
	})
}
