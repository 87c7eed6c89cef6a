// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the service.
//
// Every route and middleware is driven by a resolved [config.Config]: the
// route prefix, the documentation URLs, the proxy trust settings, the
// allowed hosts and the gzip threshold all come from it. Request tracing,
// access logging and metrics are handled here before a request reaches a
// route handler.
package http
