package integrity

import (
	"site-server/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	apiKey  string
}

// NewFeature creates a new Integrity feature.
func NewFeature(root string, criticalFiles []string, apiKey string, logger *zap.Logger) *Feature {
	svc := NewService(root, criticalFiles, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, apiKey: apiKey}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, auth.New(auth.Config{ApiKey: f.apiKey}))
	return nil
}
