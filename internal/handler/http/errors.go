// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Errors reported to clients in the "detail" field of a JSON error body.
var (
	// ErrInvalidHost is returned when the Host header matches none of the
	// allowed hosts.
	ErrInvalidHost = errors.New("invalid host header")

	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

type errorBody struct {
	Detail string `json:"detail"`
}

// writeJSON serializes data and writes it with statusCode. If marshaling
// fails, it responds with 500 Internal Server Error instead.
func writeJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// writeError writes err as {"detail": "..."} with the given status code.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, errorBody{Detail: err.Error()}, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, ErrNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}
