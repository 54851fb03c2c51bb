// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPServer matches *http.Server's lifecycle methods, allowing tests to
// substitute a mock.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService adapts http.Server's blocking ListenAndServe pattern to
// suture's context-aware Serve pattern: the listener runs in a goroutine and
// context cancellation triggers a bounded graceful shutdown.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
}

// NewHTTPServerService wraps an HTTP server as a supervised service. The
// shutdownTimeout bounds how long active connections get to drain; it
// defaults to 10 seconds when unset.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	svc := &HTTPServerService{server: server, shutdownTimeout: shutdownTimeout}
	if svc.shutdownTimeout <= 0 {
		svc.shutdownTimeout = 10 * time.Second
	}
	return svc
}

// Serve implements suture.Service. ListenAndServe runs in its own goroutine
// because it blocks until the listener closes; http.ErrServerClosed is
// folded into nil since it is the expected outcome of a graceful shutdown.
func (s *HTTPServerService) Serve(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		listenErr <- err
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := s.drain(); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	<-listenErr
	return ctx.Err()
}

// drain gives in-flight requests a bounded window to complete. It needs a
// fresh context because the supervision context is already canceled by the
// time shutdown begins.
func (s *HTTPServerService) drain() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// String implements fmt.Stringer; suture uses it to name the service in logs.
func (s *HTTPServerService) String() string {
	return "http-server"
}
