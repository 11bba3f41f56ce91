package status

import (
	"site-server/core/metrics"
	"site-server/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for the status endpoints.
type Feature struct {
	handler *Handler
	apiKey  string
	logger  *zap.Logger
}

// NewFeature creates the status feature.
func NewFeature(root string, recorder *metrics.Recorder, apiKey string, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(root, recorder),
		apiKey:  apiKey,
		logger:  logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "status"
}

// IsEnabled returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, auth.New(auth.Config{ApiKey: f.apiKey}))
	f.logger.Info("Status feature loaded")
	return nil
}
