package status

import (
	"site-server/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handler serves the health, stats and API documentation endpoints.
type Handler struct {
	root     string
	recorder *metrics.Recorder
}

// NewHandler creates a new status handler.
func NewHandler(root string, recorder *metrics.Recorder) *Handler {
	return &Handler{root: root, recorder: recorder}
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// StatsResponse is the body of the stats endpoint.
type StatsResponse struct {
	Root string `json:"root"`
	metrics.Snapshot
}

// RegisterRoutes registers the status routes. protect guards the routes
// that reveal server internals.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	group := app.Group("/_server")
	group.Get("/health", h.HandleHealth)
	group.Get("/swagger/*", swagger.HandlerDefault)
	group.Get("/stats", protect, h.HandleStats)
}

// HandleHealth reports liveness.
// @Summary Health Check
// @Description Reports that the server is up and how long it has been running.
// @Tags status
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /_server/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:        "ok",
		UptimeSeconds: h.recorder.Uptime().Seconds(),
	})
}

// HandleStats returns the request counters.
// @Summary Request Statistics
// @Description Request counts by status class and bytes served since startup.
// @Tags status
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /_server/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(StatsResponse{
		Root:     h.root,
		Snapshot: h.recorder.Snapshot(),
	})
}
