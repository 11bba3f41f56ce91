package static

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for static file serving.
type Feature struct {
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the static feature serving root.
func NewFeature(root, cacheControl string, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(root, cacheControl, logger),
		logger:  logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled returns true; serving files is the point of the process.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load verifies the root and registers the catch-all route.
func (f *Feature) Load(app fiber.Router) error {
	info, err := os.Stat(f.handler.Root())
	if err != nil {
		return fmt.Errorf("root directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", f.handler.Root())
	}

	f.handler.RegisterRoutes(app)
	f.logger.Info("Static feature loaded", zap.String("root", f.handler.Root()))
	return nil
}
