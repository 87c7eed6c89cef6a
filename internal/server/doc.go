// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the service.
//
// It binds to the resolved host and port, switches to TLS when the
// resolved scheme is https, and shuts down gracefully on SIGTERM, SIGINT
// and SIGQUIT.
package server
