package static

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"site-server/core/logger"
	"site-server/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IndexFiles are served in place of a directory listing, first match wins.
var IndexFiles = []string{"index.html", "index.htm"}

// Handler serves files below a root directory.
type Handler struct {
	root         string
	cacheControl string
	logger       *zap.Logger
}

// NewHandler creates a handler for root. cacheControl is sent with every
// file when non-empty.
func NewHandler(root, cacheControl string, logger *zap.Logger) *Handler {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	return &Handler{
		root:         root,
		cacheControl: cacheControl,
		logger:       logger,
	}
}

// Root returns the directory being served.
func (h *Handler) Root() string {
	return h.root
}

// RegisterRoutes mounts the catch-all file route. Fiber answers HEAD on GET routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleFile)
}

// HandleFile resolves the request path against the root and serves a file,
// an index page or a directory listing.
func (h *Handler) HandleFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	// The original path is used on purpose: fasthttp normalizes "..", which
	// would turn traversal attempts into lookups of unrelated files.
	rawPath := string(c.Request().URI().PathOriginal())
	if rawPath == "" {
		rawPath = "/"
	}

	target, err := Resolve(h.root, rawPath)
	switch {
	case errors.Is(err, ErrForbidden):
		l.Warn("Rejected request outside root", zap.String("path", rawPath))
		return fiber.ErrForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.ErrNotFound
	case err != nil:
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return statusFor(err)
	}

	if info.IsDir() {
		return h.serveDirectory(c, target, rawPath)
	}
	if !info.Mode().IsRegular() {
		return fiber.ErrNotFound
	}
	return h.sendFile(c, target, info)
}

func (h *Handler) serveDirectory(c *fiber.Ctx, dir, rawPath string) error {
	if !strings.HasSuffix(rawPath, "/") {
		// Leading slashes are collapsed: "//host/" would be read by clients
		// as a protocol-relative URL pointing at another host.
		location := "/" + strings.TrimLeft(rawPath, `/\`) + "/"
		if q := c.Request().URI().QueryString(); len(q) > 0 {
			location += "?" + string(q)
		}
		return c.Redirect(location, fiber.StatusMovedPermanently)
	}

	for _, name := range IndexFiles {
		index := filepath.Join(dir, name)
		if info, err := os.Stat(index); err == nil && info.Mode().IsRegular() {
			return h.sendFile(c, index, info)
		}
	}

	displayPath, err := url.PathUnescape(rawPath)
	if err != nil {
		displayPath = rawPath
	}
	body, err := renderListing(dir, displayPath)
	if err != nil {
		return statusFor(err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}

func (h *Handler) sendFile(c *fiber.Ctx, path string, info fs.FileInfo) error {
	modTime := info.ModTime()

	if h.cacheControl != "" {
		c.Set(fiber.HeaderCacheControl, h.cacheControl)
	}
	c.Set(fiber.HeaderLastModified, modTime.UTC().Format(http.TimeFormat))

	if !c.Context().IfModifiedSince(modTime) {
		c.Context().NotModified()
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return statusFor(err)
	}

	c.Set(fiber.HeaderContentType, utils.ContentType(path))
	// fasthttp closes the stream once the body has been written.
	return c.SendStream(f, int(info.Size()))
}

func statusFor(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fiber.ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return fiber.ErrForbidden
	}
	return err
}
