package server_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"site-server/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name string
		cfg  server.Config
		want string
	}{
		{"AllInterfaces", server.Config{Host: "0.0.0.0", Port: 8089}, "0.0.0.0:8089"},
		{"Loopback", server.Config{Host: "127.0.0.1", Port: 8088}, "127.0.0.1:8088"},
		{"EmptyHost", server.Config{Port: 8089}, ":8089"},
		{"IPv6", server.Config{Host: "::1", Port: 80}, "[::1]:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Addr())
		})
	}
}

func TestConfig_ShutdownTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, server.Config{}.ShutdownTimeout())
	assert.Equal(t, 2*time.Second, server.Config{ShutdownTimeoutSeconds: 2}.ShutdownTimeout())
}

func TestConfig_ResolveRoot(t *testing.T) {
	t.Run("ExplicitDirectory", func(t *testing.T) {
		dir := t.TempDir()
		want, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)

		got, err := server.Config{Root: dir}.ResolveRoot()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("SymlinkedDirectory", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "site")
		require.NoError(t, os.Mkdir(target, 0o755))
		link := filepath.Join(dir, "link")
		require.NoError(t, os.Symlink(target, link))

		want, err := filepath.EvalSymlinks(target)
		require.NoError(t, err)

		got, err := server.Config{Root: link}.ResolveRoot()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("DefaultsToExecutableDir", func(t *testing.T) {
		exe, err := os.Executable()
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(filepath.Dir(exe))
		require.NoError(t, err)

		got, err := server.Config{}.ResolveRoot()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := server.Config{Root: filepath.Join(t.TempDir(), "nope")}.ResolveRoot()
		assert.Error(t, err)
	})

	t.Run("NotADirectory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := server.Config{Root: file}.ResolveRoot()
		assert.ErrorContains(t, err, "not a directory")
	})
}
