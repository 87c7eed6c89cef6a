// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"slices"
	"strings"
)

const anyHost = "*"

// withAllowedHosts rejects requests whose Host header matches none of the
// allowed hosts with 400. An entry of "*" allows every host and an entry
// of "*.example.com" allows every subdomain of example.com.
func (h *Handler) withAllowedHosts(next http.Handler) http.Handler {
	allowed := h.cfg.Security().AllowedHosts()
	if slices.Contains(allowed, anyHost) {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := requestHost(r)
		if !hostAllowed(host, allowed) {
			h.logger.Warn().Str("host", r.Host).Msg("request host is not allowed")
			writeError(w, http.StatusBadRequest, ErrInvalidHost)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestHost(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}

func hostAllowed(host string, allowed []string) bool {
	for _, pattern := range allowed {
		pattern = strings.ToLower(pattern)
		if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
			if strings.HasSuffix(host, suffix) {
				return true
			}
			continue
		}
		if host == pattern {
			return true
		}
	}
	return false
}
