// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"

	maxTraceIDLen = 128
)

// withTraceID attaches a request-scoped logger carrying a trace_id field.
// The id is taken from X-Trace-ID, then X-Request-ID, and generated when
// neither holds a usable value. It is echoed back in X-Trace-ID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := incomingTraceID(r)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func incomingTraceID(r *http.Request) string {
	for _, header := range []string{traceIDHeader, requestIDHeader} {
		if id := r.Header.Get(header); validTraceID(id) {
			return id
		}
	}
	return ""
}

// validTraceID accepts non-empty printable ASCII up to maxTraceIDLen bytes.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
