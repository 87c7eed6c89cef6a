// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/apiconf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Routes(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantBody    string
		contentType string
	}{
		{name: "health", method: http.MethodGet, path: "/api/v1/health", wantStatus: http.StatusOK, wantBody: "ok", contentType: "text/plain"},
		{name: "version", method: http.MethodGet, path: "/api/v1/version", wantStatus: http.StatusOK, wantBody: "1", contentType: "text/plain"},
		{name: "openapi", method: http.MethodGet, path: "/api/v1/openapi.json", wantStatus: http.StatusOK, contentType: "application/json"},
		{name: "swagger ui", method: http.MethodGet, path: "/api/v1/docs", wantStatus: http.StatusOK, contentType: "text/html; charset=utf-8"},
		{name: "redoc", method: http.MethodGet, path: "/api/v1/redoc", wantStatus: http.StatusOK, contentType: "text/html; charset=utf-8"},
		{name: "oauth2 redirect", method: http.MethodGet, path: "/api/v1/docs/oauth2-redirect", wantStatus: http.StatusOK, contentType: "text/html; charset=utf-8"},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nonexistent", wantStatus: http.StatusNotFound, wantBody: `{"detail":"not found"}`, contentType: "application/json"},
		{name: "outside prefix", method: http.MethodGet, path: "/health", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, path: "/api/v1/health", wantStatus: http.StatusMethodNotAllowed, wantBody: `{"detail":"method not allowed"}`, contentType: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rr.Header().Get("Content-Type"))
			}
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_CustomPrefixAndVersion(t *testing.T) {
	router := newTestHandler(t, config.RawSettings{
		"version": "2",
		"prefix":  "/orders/v{api_version}",
	}).Init()

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/orders/v2/version", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Body.String())

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/orders/v2/openapi.json", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_EmptyPrefix(t *testing.T) {
	router := newTestHandler(t, config.RawSettings{"prefix": ""}).Init()

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/docs", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_DocsDisabled(t *testing.T) {
	router := newTestHandler(t, config.RawSettings{
		"docs": map[string]any{"enabled": false},
	}).Init()

	for _, path := range []string{"/api/v1/openapi.json", "/api/v1/docs", "/api/v1/redoc", "/api/v1/docs/oauth2-redirect"} {
		rr := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_EmptyDocsURLIsNotServed(t *testing.T) {
	router := newTestHandler(t, config.RawSettings{
		"docs": map[string]any{"redoc_url": ""},
	}).Init()

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/redoc", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/docs", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_RecoversPanics(t *testing.T) {
	h := newTestHandler(t, nil)
	router := h.Init()
	router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestInit_OpenAPIDocument(t *testing.T) {
	router := newTestHandler(t, config.RawSettings{
		"name": "Orders API",
		"docs": map[string]any{"description": "Order management"},
	}).Init()

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/openapi.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var doc openAPIDocument
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(t, openAPIVersion, doc.OpenAPI)
	assert.Equal(t, "Orders API", doc.Info.Title)
	assert.Equal(t, "1", doc.Info.Version)
	assert.Equal(t, "Order management", doc.Info.Description)
	assert.Contains(t, doc.Paths, "/api/v1/health")
	assert.Contains(t, doc.Paths, "/api/v1/version")
}

func TestRoutePath(t *testing.T) {
	tests := []struct {
		prefix string
		elem   []string
		want   string
	}{
		{prefix: "/api/v1", elem: []string{"health"}, want: "/api/v1/health"},
		{prefix: "api/v1", elem: []string{"health"}, want: "/api/v1/health"},
		{prefix: "/api/v1/", elem: []string{"health"}, want: "/api/v1/health"},
		{prefix: "", elem: []string{"health"}, want: "/health"},
		{prefix: "/api/v1/docs", want: "/api/v1/docs"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, routePath(tt.prefix, tt.elem...))
		})
	}
}

func TestURLPath(t *testing.T) {
	tests := []struct {
		rawURL string
		want   string
	}{
		{rawURL: "", want: ""},
		{rawURL: "/api/v1/openapi.json", want: "/api/v1/openapi.json"},
		{rawURL: "https://example.com/api/docs", want: "/api/docs"},
		{rawURL: "https://example.com", want: ""},
		{rawURL: "docs", want: "/docs"},
		{rawURL: "%zz", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.rawURL, func(t *testing.T) {
			assert.Equal(t, tt.want, urlPath(tt.rawURL))
		})
	}
}
