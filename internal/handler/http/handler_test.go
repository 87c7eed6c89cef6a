// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/apiconf/internal/config"
	"github.com/MKhiriev/apiconf/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConfig resolves raw on top of the defaults outside of any launcher.
func newTestConfig(t *testing.T, raw config.RawSettings) *config.Config {
	t.Helper()

	cfg, err := config.Resolve(raw, config.LaunchContext{Program: "/usr/local/bin/apiserver"})
	require.NoError(t, err)
	return cfg
}

// newTestHandler builds a Handler with a nop logger (no stdout output).
func newTestHandler(t *testing.T, raw config.RawSettings) *Handler {
	t.Helper()

	return &Handler{cfg: newTestConfig(t, raw), logger: logger.Nop()}
}

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler(t *testing.T) {
	cfg := newTestConfig(t, nil)
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	h := NewHandler(cfg, log)

	require.NotNil(t, h)
	assert.Same(t, cfg, h.cfg)
	assert.Same(t, log, h.logger)
	assert.Contains(t, buf.String(), `"prefix":"/api/v1"`)
}
