package static_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"site-server/core/server"
	"site-server/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, site) {
	t.Helper()
	s := newSite(t)
	app := server.NewApp(zap.NewNop())
	static.NewHandler(s.root, "no-cache", zap.NewNop()).RegisterRoutes(app)
	return app, s
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandleFile_ServesBytes(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, httptest.NewRequest("GET", "/mmm/MMM%201.png", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, string(pngBytes), body)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	assert.NotEmpty(t, resp.Header.Get("Last-Modified"))
}

func TestHandleFile_ContentTypes(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		path string
		want string
	}{
		{"/index.html", "text/html"},
		{"/styles.css", "text/css"},
		{"/mmm/MMM%201.png", "image/png"},
		{"/docs/A.txt", "text/plain"},
		{"/data.zzqx", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, _ := doRequest(t, app, httptest.NewRequest("GET", tt.path, nil))
			require.Equal(t, 200, resp.StatusCode)
			assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), tt.want),
				"got %q", resp.Header.Get("Content-Type"))
		})
	}
}

func TestHandleFile_NotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, httptest.NewRequest("GET", "/missing.html", nil))
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Not Found", body)
	assert.Empty(t, resp.Header.Get("Cache-Control"))
}

func TestHandleFile_Traversal(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, path := range []string{
		"/../outside/secret.txt",
		"/%2e%2e/outside/secret.txt",
		"/docs/../../outside/secret.txt",
		"/link-out",
	} {
		t.Run(path, func(t *testing.T) {
			resp, body := doRequest(t, app, httptest.NewRequest("GET", path, nil))
			assert.Contains(t, []int{403, 404}, resp.StatusCode)
			assert.NotContains(t, body, "TOP SECRET")
		})
	}

	resp, _ := doRequest(t, app, httptest.NewRequest("GET", "/../outside/secret.txt", nil))
	assert.Equal(t, 403, resp.StatusCode)
}

func TestHandleFile_QueryIgnored(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, httptest.NewRequest("GET", "/styles.css?cb=1700000000_abc", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "body { margin: 0; }", body)
}

func TestHandleFile_Head(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, httptest.NewRequest("HEAD", "/styles.css", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))
	assert.Empty(t, body)
}

func TestHandleFile_IfModifiedSince(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/styles.css", nil)
	req.Header.Set("If-Modified-Since", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
	resp, body := doRequest(t, app, req)
	assert.Equal(t, 304, resp.StatusCode)
	assert.Empty(t, body)

	req = httptest.NewRequest("GET", "/styles.css", nil)
	req.Header.Set("If-Modified-Since", time.Now().Add(-24*time.Hour).UTC().Format(http.TimeFormat))
	resp, body = doRequest(t, app, req)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "body { margin: 0; }", body)
}

func TestHandleFile_Directories(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("RootIndex", func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "<h1>home</h1>", body)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	})

	t.Run("HtmIndex", func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest("GET", "/blog/", nil))
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "blog index", body)
	})

	t.Run("RedirectAddsSlash", func(t *testing.T) {
		resp, _ := doRequest(t, app, httptest.NewRequest("GET", "/docs?sort=name", nil))
		assert.Equal(t, 301, resp.StatusCode)
		assert.Equal(t, "/docs/?sort=name", resp.Header.Get("Location"))
	})

	t.Run("RedirectStaysOnHost", func(t *testing.T) {
		for _, target := range []string{"//evil.example", "///evil.example?q=1"} {
			resp, _ := doRequest(t, app, httptest.NewRequest("GET", target, nil))
			assert.Equal(t, 301, resp.StatusCode, target)
			location := resp.Header.Get("Location")
			assert.True(t, strings.HasPrefix(location, "/evil.example/"), "%s -> %s", target, location)
			assert.False(t, strings.HasPrefix(location, "//"), "%s -> %s", target, location)
		}
	})

	t.Run("Listing", func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest("GET", "/docs/", nil))
		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
		assert.Contains(t, body, "Directory listing for /docs/")
		assert.Contains(t, body, `href="sub/"`)
		assert.Contains(t, body, ">sub/</a>")
		assert.Contains(t, body, "a&amp;b&lt;c&gt;.txt</a>")
		assert.NotContains(t, body, "<c>")

		// Sorted case-insensitively: a&b<c>.txt, A.txt, b.txt, sub/
		odd := strings.Index(body, ">a&amp;b")
		a := strings.Index(body, ">A.txt<")
		b := strings.Index(body, ">b.txt<")
		sub := strings.Index(body, ">sub/<")
		assert.True(t, odd < a && a < b && b < sub, "unexpected order:\n%s", body)
	})
}
