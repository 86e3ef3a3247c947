package upload

import (
	"bytes"

	"upload-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for file uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/upload", h.HandleUpload)
}

// HandleUpload uploads every file attachment of a multipart form.
// @Summary Upload Files
// @Description Accepts a multipart form and stores every file attachment in the configured bucket under the key {field}/{filename}. Attachments are processed in submission order; a failed attachment is reported but does not abort the rest of the batch.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} upload.BatchResponse "All files uploaded"
// @Success 207 {object} upload.BatchResponse "Some files failed"
// @Failure 400 {object} map[string]string "No files provided"
// @Router /upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Received request to upload files")

	form, err := ParseForm(c.Get(fiber.HeaderContentType), bytes.NewReader(c.Body()))
	if err != nil {
		l.Warn("Malformed multipart body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Malformed multipart body"})
	}
	if form.Empty() {
		l.Warn("No file fields in request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No files provided"})
	}

	report := h.service.Process(c.Context(), form)

	status := fiber.StatusOK
	if report.Status() == StatusPartialSuccess {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(report.Response())
}
