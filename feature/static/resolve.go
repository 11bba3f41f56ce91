package static

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

var (
	// ErrNotFound means the path does not name anything under the root.
	ErrNotFound = errors.New("file not found")
	// ErrForbidden means the path tries to leave the root directory.
	ErrForbidden = errors.New("path escapes root directory")
)

// Resolve maps a raw request path onto a file under root. Root must be an
// absolute, symlink-free directory. Paths containing ".." segments are
// rejected rather than normalized, and symlinks may not point outside root.
func Resolve(root, rawPath string) (string, error) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", ErrNotFound
	}
	if strings.IndexByte(decoded, 0) >= 0 {
		return "", ErrForbidden
	}

	for _, segment := range strings.FieldsFunc(decoded, isSeparator) {
		if segment == ".." {
			return "", ErrForbidden
		}
	}

	candidate := filepath.Join(root, filepath.FromSlash(path.Clean("/"+decoded)))

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
			return "", ErrNotFound
		case errors.Is(err, fs.ErrPermission):
			return "", ErrForbidden
		}
		return "", fmt.Errorf("failed to resolve %s: %w", rawPath, err)
	}

	if !within(root, resolved) {
		return "", ErrForbidden
	}
	return resolved, nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
