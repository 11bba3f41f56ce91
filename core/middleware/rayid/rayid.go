package rayid

import (
	"site-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRayID carries the request id on requests and responses.
const HeaderRayID = "X-Ray-ID"

// New returns a middleware that tags every request with a RayID.
// A well-formed UUID supplied by the client is kept so traces can span hops.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRayID)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderRayID, rid)
		return c.Next()
	}
}
