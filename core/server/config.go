package server

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the listener binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"8089"`
	// Root is the directory served to clients. Empty means the directory
	// containing the running executable.
	Root string `mapstructure:"root" default:""`
	// CacheControl is sent with every served file when non-empty.
	CacheControl string `mapstructure:"cache_control" default:"no-cache"`
	// ApiKey is the secret key required to access the admin endpoints.
	ApiKey string `mapstructure:"api_key" default:""`
	// CriticalFiles lists root-relative files the site cannot work without.
	CriticalFiles []string `mapstructure:"critical_files" default:"index.html"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may delay shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

// Addr returns the host:port pair the listener binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ShutdownTimeout returns the shutdown bound, defaulting to 5 seconds.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// ResolveRoot returns the absolute, symlink-free root directory.
func (c Config) ResolveRoot() (string, error) {
	root := c.Root
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("failed to locate executable: %w", err)
		}
		root = filepath.Dir(exe)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %s: %w", root, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("root directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root %s is not a directory", abs)
	}
	return abs, nil
}
