// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/apiconf/internal/config"
	"github.com/MKhiriev/apiconf/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
)

type httpServer struct {
	server *http.Server

	tls      bool
	certFile string
	keyFile  string

	logger *logger.Logger
}

// newHTTPServer serves TLS when the resolved scheme is https with ssl
// enabled; the resolver guarantees the cert and key files are set then.
// An https scheme without ssl is served as plain HTTP with a warning.
func newHTTPServer(handler http.Handler, cfg *config.Config, logger *logger.Logger) *httpServer {
	s := &httpServer{
		server: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}

	ssl := cfg.Security().SSL()
	if cfg.Scheme() == config.SchemeHTTPS && ssl.Enabled() {
		s.tls = true
		s.certFile = ssl.CertFile()
		s.keyFile = ssl.KeyFile()
	}

	// https under a launcher --ssl* flag with ssl disabled here
	if cfg.Scheme() == config.SchemeHTTPS && !s.tls {
		logger.Warn().
			Str("url", cfg.URL().String()).
			Msg("scheme is https but security.ssl is disabled, serving plain HTTP; TLS must be terminated in front of this process")
	}

	return s
}

// serve accepts connections on l until the server is shut down.
func (h *httpServer) serve(l net.Listener) error {
	var err error
	if h.tls {
		err = h.server.ServeTLS(l, h.certFile, h.keyFile)
	} else {
		err = h.server.Serve(l)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
