package health

import (
	"upload-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealthCheck)
}

// HandleHealthCheck verifies connectivity to the storage backend.
// @Summary Health Check
// @Description Probes the configured bucket to verify storage connectivity. The probe runs on every call; nothing is cached.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Healthy"
// @Failure 500 {object} map[string]string "Unhealthy"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Check(c.Context()); err != nil {
		l.Error("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":        "healthy",
		"s3_connection": "ok",
	})
}
