package integrity

import (
	"site-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes behind protect.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	app.Get("/_server/integrity", protect, h.HandleStructureCheck)
}

// HandleStructureCheck reports missing critical files.
// @Summary Check Critical Files
// @Description Lists critical site files that are missing from the root directory.
// @Tags integrity
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /_server/integrity [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing critical files detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}
