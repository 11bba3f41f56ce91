package auth_test

import (
	"net/http/httptest"
	"testing"

	"site-server/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		headers map[string]string
		want    int
	}{
		{"Disabled", "", nil, 200},
		{"Missing", "secret", nil, 401},
		{"Wrong", "secret", map[string]string{auth.HeaderAPIKey: "nope"}, 401},
		{"Header", "secret", map[string]string{auth.HeaderAPIKey: "secret"}, 200},
		{"Bearer", "secret", map[string]string{"Authorization": "Bearer secret"}, 200},
		{"BasicIgnored", "secret", map[string]string{"Authorization": "Basic secret"}, 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := setupApp(tt.key).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
