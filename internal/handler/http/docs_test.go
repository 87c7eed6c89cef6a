// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/apiconf/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDocsTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  config.RawSettings
		want string
	}{
		{name: "falls back to the service name", raw: config.RawSettings{"name": "Orders API"}, want: "Orders API"},
		{name: "explicit title", raw: config.RawSettings{"name": "Orders API", "docs": map[string]any{"title": "Orders"}}, want: "Orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestHandler(t, tt.raw).docsTitle())
		})
	}
}

func TestGetSwaggerUI(t *testing.T) {
	h := newTestHandler(t, config.RawSettings{"name": "Orders API"})

	rr := serve(http.HandlerFunc(h.getSwaggerUI), httptest.NewRequest(http.MethodGet, "/api/v1/docs", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<title>Orders API - Swagger UI</title>")
	assert.Contains(t, body, "/api/v1/openapi.json")
	assert.Contains(t, body, "/api/v1/docs/oauth2-redirect")
}

func TestGetRedoc(t *testing.T) {
	h := newTestHandler(t, config.RawSettings{"docs": map[string]any{"title": "Orders <beta>"}})

	rr := serve(http.HandlerFunc(h.getRedoc), httptest.NewRequest(http.MethodGet, "/api/v1/redoc", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<title>Orders &lt;beta&gt; - ReDoc</title>")
	assert.Contains(t, body, `spec-url="/api/v1/openapi.json"`)
}

func TestGetOAuth2Redirect(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := serve(http.HandlerFunc(h.getOAuth2Redirect), httptest.NewRequest(http.MethodGet, "/api/v1/docs/oauth2-redirect", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "swaggerUIRedirectOauth2")
}
