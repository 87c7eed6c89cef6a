// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router. Service routes live under the resolved prefix;
// /metrics is always served at the root.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.cfg.BehindProxy() || h.cfg.BehindCFProxy() {
		router.Use(h.withClientIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withAllowedHosts)
	router.Use(h.withGZip)

	router.Handle("/metrics", promhttp.Handler())

	prefix := h.cfg.Prefix()
	router.Get(routePath(prefix, "health"), h.getHealth)
	router.Get(routePath(prefix, "version"), h.getVersion)

	if docs := h.cfg.Docs(); docs.Enabled() {
		h.registerDocs(router, docs.OpenAPIURL(), h.getOpenAPI)
		h.registerDocs(router, docs.DocsURL(), h.getSwaggerUI)
		h.registerDocs(router, docs.RedocURL(), h.getRedoc)
		h.registerDocs(router, docs.OAuth2RedirectURL(), h.getOAuth2Redirect)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}

// registerDocs mounts fn on the path part of rawURL. Empty URLs disable
// the page.
func (h *Handler) registerDocs(router chi.Router, rawURL string, fn func(w http.ResponseWriter, r *http.Request)) {
	p := urlPath(rawURL)
	if p == "" {
		return
	}
	h.logger.Debug().Str("path", p).Msg("docs route registered")
	router.Get(p, fn)
}

// routePath joins the route prefix and elem into a rooted path.
func routePath(prefix string, elem ...string) string {
	return path.Join(append([]string{"/", prefix}, elem...)...)
}

// urlPath returns the rooted path of rawURL, which may be absolute.
func urlPath(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return ""
	}
	return routePath(u.Path)
}
