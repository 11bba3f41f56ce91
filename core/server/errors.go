package server

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStarted is returned when serving before Start bound a listener.
	ErrNotStarted = errors.New("server not started")
	// ErrServerClosed is returned by Start once the server has been stopped.
	ErrServerClosed = errors.New("server closed")
)

// BindError reports that the listening socket could not be acquired.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
