// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/apiconf/internal/config"
	"github.com/MKhiriev/apiconf/internal/logger"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	address    string
	scheme     config.Scheme

	// listen opens the listening socket; tests replace it.
	listen func(network, address string) (net.Listener, error)

	logger *logger.Logger
}

func NewServer(handler http.Handler, cfg *config.Config, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handler == nil {
		return nil, errNoHandler
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		address:    cfg.Address(),
		scheme:     cfg.Scheme(),
		listen:     net.Listen,
		logger:     logger,
	}, nil
}

// RunServer serves until ctx is cancelled or one of SIGTERM, SIGINT and
// SIGQUIT arrives, then shuts the server down gracefully.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := s.listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("address", l.Addr().String()).
			Stringer("scheme", s.scheme).
			Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(l)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("error serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}
	if err = <-serveErr; err != nil {
		return fmt.Errorf("error serving http: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
