package utils

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

// ContentType infers the MIME type of a file from its extension.
// Unknown or missing extensions map to application/octet-stream.
func ContentType(name string) string {
	if mime := fiberutils.GetMIME(filepath.Ext(name)); mime != "" {
		return mime
	}
	return fiber.MIMEOctetStream
}

// IsHidden reports whether a file or directory name starts with a dot.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// ToSlashKey converts a root-relative OS path into a slash-separated key.
func ToSlashKey(rel string) string {
	return strings.TrimPrefix(filepath.ToSlash(rel), "/")
}
