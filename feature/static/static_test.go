package static_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

// site lays out a root directory next to a sibling directory holding a
// secret that must never be served.
type site struct {
	root    string
	outside string
}

func newSite(t *testing.T) site {
	t.Helper()
	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	s := site{
		root:    filepath.Join(base, "site"),
		outside: filepath.Join(base, "outside"),
	}

	files := map[string][]byte{
		"index.html":          []byte("<h1>home</h1>"),
		"styles.css":          []byte("body { margin: 0; }"),
		"mmm/MMM 1.png":       pngBytes,
		"docs/b.txt":          []byte("b"),
		"docs/A.txt":          []byte("A"),
		"docs/a&b<c>.txt":     []byte("odd"),
		"docs/sub/nested.txt": []byte("nested"),
		"data.zzqx":           []byte("opaque"),
		"blog/index.htm":      []byte("blog index"),
		"evil.example/x.txt":  []byte("x"),
	}
	for name, content := range files {
		path := filepath.Join(s.root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, content, 0o644))
	}

	require.NoError(t, os.MkdirAll(s.outside, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(s.outside, "secret.txt"), []byte("TOP SECRET"), 0o644))

	require.NoError(t, os.Symlink(filepath.Join(s.outside, "secret.txt"), filepath.Join(s.root, "link-out")))
	require.NoError(t, os.Symlink(filepath.Join(s.root, "styles.css"), filepath.Join(s.root, "link-in.css")))

	return s
}
