// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until ctx is cancelled or the server fails; Shutdown
// gracefully stops it and frees associated resources.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
