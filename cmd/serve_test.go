package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"site-server/core/config"
	"site-server/core/logger"
	"site-server/core/server"
	"site-server/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSiteRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>portfolio</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.js"), []byte("console.log(1)"), 0o644))
	return root
}

func testConfig(root string) *config.Config {
	return &config.Config{
		Server: server.Config{
			Host:                   "127.0.0.1",
			Port:                   0,
			Root:                   root,
			CacheControl:           "no-cache",
			CriticalFiles:          []string{"index.html"},
			ShutdownTimeoutSeconds: 1,
		},
		Storage: storage.Config{Bucket: "site"},
		Log:     logger.Config{Level: "info", Format: "console"},
	}
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestNewServer(t *testing.T) {
	var out bytes.Buffer
	srv, err := newServer(testConfig(newSiteRoot(t)), zap.NewNop(), &out)
	require.NoError(t, err)
	require.NoError(t, srv.Start())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ServeForever(ctx) }()

	base := srv.URL()

	resp, body := get(t, base+"/")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "<h1>portfolio</h1>", body)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))

	resp, _ = get(t, base+"/main.js")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "javascript")

	resp, _ = get(t, base+"/missing.html")
	assert.Equal(t, 404, resp.StatusCode)

	resp, body = get(t, base+"/_server/stats")
	require.Equal(t, 200, resp.StatusCode)
	var stats map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.EqualValues(t, 3, stats["requests"])
	assert.EqualValues(t, 1, stats["status_4xx"])

	resp, body = get(t, base+"/_server/integrity")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"status":"checked","missing":[]}`, body)

	// Publish is not loaded while storage is disabled.
	resp, _ = get(t, base+"/_server/publish")
	assert.Equal(t, 404, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Contains(t, out.String(), "Serving at http://localhost:")
	assert.Contains(t, out.String(), "Server stopped")
}

func TestNewServer_BadRoot(t *testing.T) {
	_, err := newServer(testConfig(filepath.Join(t.TempDir(), "nope")), zap.NewNop(), io.Discard)
	assert.Error(t, err)
}

func TestRunIntegrity(t *testing.T) {
	root := newSiteRoot(t)
	t.Setenv("SERVER_ROOT", root)
	integrityCmd.SetContext(context.Background())

	t.Setenv("SERVER_CRITICAL_FILES", "index.html,main.js")
	assert.NoError(t, runIntegrity(integrityCmd, nil))

	t.Setenv("SERVER_CRITICAL_FILES", "index.html,robots.txt")
	assert.EqualError(t, runIntegrity(integrityCmd, nil), "1 critical files missing")
}

func TestRunPublish_StorageDisabled(t *testing.T) {
	t.Setenv("SERVER_ROOT", newSiteRoot(t))
	t.Setenv("STORAGE_ENABLED", "false")
	publishCmd.SetContext(context.Background())

	err := runPublish(publishCmd, nil)
	assert.ErrorContains(t, err, "storage is disabled")
}

// freePort returns a loopback port that was free a moment ago.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func serveEnv(t *testing.T, port int) {
	t.Helper()
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", strconv.Itoa(port))
	t.Setenv("SERVER_ROOT", newSiteRoot(t))
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT_SECONDS", "1")
	t.Setenv("STORAGE_ENABLED", "false")
}

// startServe runs the serve command in the background and waits until it
// answers requests.
func startServe(t *testing.T, ctx context.Context, port int) (<-chan error, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	serveCmd.SetContext(ctx)
	serveCmd.SetOut(&out)
	t.Cleanup(func() { serveCmd.SetOut(nil) })

	done := make(chan error, 1)
	go func() { done <- runServe(serveCmd, nil) }()

	healthURL := "http://127.0.0.1:" + strconv.Itoa(port) + "/_server/health"
	require.Eventually(t, func() bool {
		select {
		case err := <-done:
			done <- err
			return true
		default:
		}
		resp, err := http.Get(healthURL)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == 200
	}, 5*time.Second, 20*time.Millisecond)

	return done, &out
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
		return nil
	}
}

func assertPortFree(t *testing.T, port int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(port))
	require.NoError(t, err, "port %d still held", port)
	require.NoError(t, ln.Close())
}

func TestRunServe_Cancel(t *testing.T) {
	port := freePort(t)
	serveEnv(t, port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done, out := startServe(t, ctx, port)

	cancel()
	assert.NoError(t, waitDone(t, done))
	assertPortFree(t, port)
	assert.Contains(t, out.String(), "Serving at http://localhost:"+strconv.Itoa(port))
	assert.Contains(t, out.String(), "Server stopped")
}

func TestRunServe_Interrupt(t *testing.T) {
	port := freePort(t)
	serveEnv(t, port)

	done, out := startServe(t, context.Background(), port)

	// The command's signal handler is installed before it starts answering
	// requests, so the interrupt cancels serving instead of killing the test.
	self, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	if err := self.Signal(os.Interrupt); err != nil {
		t.Skipf("cannot deliver interrupt on this platform: %v", err)
	}

	assert.NoError(t, waitDone(t, done))
	assertPortFree(t, port)
	assert.Contains(t, out.String(), "Server stopped")
}

func TestRunServe_BindError(t *testing.T) {
	held, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer held.Close()
	serveEnv(t, held.Addr().(*net.TCPAddr).Port)

	serveCmd.SetContext(context.Background())
	serveCmd.SetOut(io.Discard)
	t.Cleanup(func() { serveCmd.SetOut(nil) })

	err = runServe(serveCmd, nil)
	var bindErr *server.BindError
	require.True(t, errors.As(err, &bindErr), "got %v", err)
	assert.Equal(t, held.Addr().String(), bindErr.Addr)
}
