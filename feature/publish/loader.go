package publish

import (
	"site-server/core/middleware/auth"
	"site-server/core/reconcile"
	"site-server/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
	apiKey  string
}

// NewFeature creates a new Publish feature. The feature stays unloaded unless
// storage is enabled and a client is available.
func NewFeature(client storage.Client, spec *reconcile.Spec, apiKey string, logger *zap.Logger) *Feature {
	svc := NewService(client, spec, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
		enabled: client != nil && spec.Storage.Enabled,
		apiKey:  apiKey,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "publish"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.apiKey == "" {
		f.service.logger.Warn("Publish endpoints are unprotected: set SERVER_API_KEY to require a key for bucket writes")
	}
	f.handler.RegisterRoutes(app, auth.New(auth.Config{ApiKey: f.apiKey}))
	f.service.logger.Info("Publish feature loaded", zap.String("bucket", f.service.spec.Storage.Bucket))
	return nil
}
