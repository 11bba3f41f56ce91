package publish

import (
	"site-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for publishing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the publish routes behind protect.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	group := app.Group("/_server/publish", protect)
	group.Get("/", h.HandlePlan)
	group.Post("/", h.HandleApply)
}

// HandlePlan returns the publish plan.
// @Summary Plan Publish
// @Description Compares the root directory with the storage bucket without changing anything.
// @Tags publish
// @Produce json
// @Security ApiKeyAuth
// @Param purge query boolean false "Plan deletion of objects missing locally"
// @Success 200 {object} reconcile.ReconcilePlan
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /_server/publish [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	purge := c.Query("purge") == "true"

	plan, err := h.service.Plan(c.Context(), purge)
	if err != nil {
		l.Error("Publish plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(plan)
}

// HandleApply executes the publish.
// @Summary Apply Publish
// @Description Uploads new and changed files to the bucket. Requires confirm=true.
// @Tags publish
// @Produce json
// @Security ApiKeyAuth
// @Param confirm query boolean true "Confirm the mutation"
// @Param purge query boolean false "Delete objects missing locally"
// @Success 200 {object} map[string]interface{} "Apply Report"
// @Failure 400 {object} map[string]string "Confirmation required"
// @Router /_server/publish [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "confirmation required: pass confirm=true",
		})
	}
	purge := c.Query("purge") == "true"

	l.Info("Publish requested", zap.Bool("purge", purge))
	report, err := h.service.Apply(c.Context(), purge)
	if err != nil {
		l.Error("Publish failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Publish completed", zap.Int("executed", report.Executed))
	return c.JSON(report)
}
