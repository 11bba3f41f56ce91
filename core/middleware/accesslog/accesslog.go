package accesslog

import (
	"time"

	"site-server/core/logger"
	"site-server/core/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware logging one line per request with its final
// status. Errors from the chain are rendered here through the app's error
// handler so the logged status matches what the client receives. observer
// may be nil.
func New(l *zap.Logger, observer metrics.Observer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		// Reading Body() would drain a file stream into memory, so streamed
		// responses are measured by their declared length. HEAD responses
		// declare a length but carry no body.
		var size int64
		switch {
		case c.Method() == fiber.MethodHead:
		case c.Response().IsBodyStream():
			size = int64(c.Response().Header.ContentLength())
		default:
			size = int64(len(c.Response().Body()))
		}
		if observer != nil {
			observer.Observe(status, size)
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", string(c.Request().URI().PathOriginal())),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}

		rl := logger.WithRayID(l, c)
		switch {
		case status >= fiber.StatusInternalServerError:
			rl.Error("Request failed", fields...)
		case status >= fiber.StatusBadRequest:
			rl.Warn("Request rejected", fields...)
		default:
			rl.Info("Request served", fields...)
		}
		return nil
	}
}
