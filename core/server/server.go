package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// banner styles operator notices. Color is dropped when stdout is not a terminal.
var banner = color.New(color.FgGreen, color.Bold)

// StaticFileServer owns the listening socket and runs the fiber app over it.
// Binding and serving are separate steps so bind failures surface before
// anything blocks.
type StaticFileServer struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
	out    io.Writer

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

// New creates a server. Notices meant for the operator go to out.
func New(cfg Config, app *fiber.App, logger *zap.Logger, out io.Writer) *StaticFileServer {
	if out == nil {
		out = io.Discard
	}
	return &StaticFileServer{
		cfg:    cfg,
		app:    app,
		logger: logger,
		out:    out,
	}
}

// Start binds the listener. Failure to bind is returned as *BindError and is
// never retried.
func (s *StaticFileServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrServerClosed
	}
	if s.ln != nil {
		return nil
	}

	addr := s.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return &BindError{Addr: addr, Err: err}
	}
	s.ln = ln

	s.logger.Info("Listening", zap.String("addr", ln.Addr().String()))
	banner.Fprintf(s.out, "Serving at %s\n", s.urlLocked())
	return nil
}

// ServeForever serves connections until ctx is cancelled or the app fails.
// The listener is released on every return path.
func (s *StaticFileServer) ServeForever(ctx context.Context) (err error) {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return ErrNotStarted
	}

	defer func() {
		if stopErr := s.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server...")
		return nil
	case serveErr := <-errCh:
		if serveErr == nil {
			return nil
		}
		return fmt.Errorf("serve: %w", serveErr)
	}
}

// Stop shuts the app down and closes the listener. Safe to call repeatedly.
func (s *StaticFileServer) Stop() error {
	s.mu.Lock()
	ln := s.ln
	s.ln = nil
	s.closed = true
	s.mu.Unlock()

	if ln == nil {
		return nil
	}

	if err := s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout()); err != nil {
		s.logger.Warn("Graceful shutdown incomplete", zap.Error(err))
	}

	// fasthttp closes the listeners it serves on; close again for the case
	// where serving never started.
	var err error
	if cerr := ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
		err = fmt.Errorf("failed to release listener: %w", cerr)
	}

	s.logger.Info("Server stopped")
	banner.Fprintln(s.out, "Server stopped")
	return err
}

// Addr returns the bound address, or nil before Start.
func (s *StaticFileServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// URL returns the local URL clients use to reach the server.
func (s *StaticFileServer) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.urlLocked()
}

func (s *StaticFileServer) urlLocked() string {
	port := s.cfg.Port
	if s.ln != nil {
		if tcp, ok := s.ln.Addr().(*net.TCPAddr); ok {
			port = tcp.Port
		}
	}
	return "http://localhost:" + strconv.Itoa(port)
}
