package server

import (
	"errors"

	"site-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// NewApp creates the fiber application every feature is mounted on.
func NewApp(l *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "site-server",
		DisableStartupMessage: true, // Start prints its own banner
		ErrorHandler:          errorHandler(l),
	})
}

// errorHandler renders errors as a plain-text status line. Handlers signal
// per-request failures with *fiber.Error; anything else is a 500.
func errorHandler(l *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		} else {
			logger.WithRayID(l, c).Error("Unhandled request error",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(utils.StatusMessage(code))
	}
}
