// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
)

// Config is the fully resolved, immutable service configuration. It is
// only produced by [Resolver.Resolve] and has no mutators, so a *Config can
// be shared freely between goroutines.
type Config struct {
	name          string
	slug          string
	scheme        Scheme
	bindHost      string
	port          int
	version       string
	prefix        string
	gzipMinSize   int
	behindProxy   bool
	behindCFProxy bool

	dev      Dev
	security Security
	docs     Docs
	paths    Paths
}

// Name returns the human-readable service name.
func (c *Config) Name() string { return c.name }

// Slug returns the URL and filesystem friendly service identifier.
func (c *Config) Slug() string { return c.slug }

// Scheme returns the scheme the service is reachable under. It is https
// whenever TLS was enabled by configuration or by a launch flag.
func (c *Config) Scheme() Scheme { return c.scheme }

// BindHost returns the listen address.
func (c *Config) BindHost() string { return c.bindHost }

// Port returns the listen port.
func (c *Config) Port() int { return c.port }

// Address returns host:port suitable for net.Listen.
func (c *Config) Address() string {
	return net.JoinHostPort(c.bindHost, strconv.Itoa(c.port))
}

// URL returns the base URL of the API, prefix included.
func (c *Config) URL() *url.URL {
	return &url.URL{
		Scheme: c.scheme.String(),
		Host:   c.Address(),
		Path:   c.prefix,
	}
}

// Version returns the API version string.
func (c *Config) Version() string { return c.version }

// Prefix returns the expanded route prefix. It may be empty.
func (c *Config) Prefix() string { return c.prefix }

// GzipMinSize returns the minimum response size in bytes that gets
// compressed.
func (c *Config) GzipMinSize() int { return c.gzipMinSize }

// BehindProxy reports whether forwarding headers from trusted proxies are
// honoured.
func (c *Config) BehindProxy() bool { return c.behindProxy }

// BehindCFProxy reports whether the service sits behind Cloudflare.
func (c *Config) BehindCFProxy() bool { return c.behindCFProxy }

// Dev returns the development settings.
func (c *Config) Dev() Dev { return c.dev }

// Security returns the TLS and trusted-host settings.
func (c *Config) Security() Security { return c.security }

// Docs returns the documentation exposure settings.
func (c *Config) Docs() Docs { return c.docs }

// Paths returns the resolved filesystem directories.
func (c *Config) Paths() Paths { return c.paths }

// MarshalZerologObject implements zerolog.LogObjectMarshaler. File paths of
// TLS material are logged, their contents never are.
func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", c.name).
		Str("slug", c.slug).
		Str("scheme", c.scheme.String()).
		Str("address", c.Address()).
		Str("version", c.version).
		Str("prefix", c.prefix).
		Int("gzip_min_size", c.gzipMinSize).
		Bool("behind_proxy", c.behindProxy).
		Bool("behind_cf_proxy", c.behindCFProxy).
		Bool("debug", c.dev.debug).
		Str("log_level", c.dev.logLevel).
		Bool("ssl", c.security.ssl.enabled).
		Strs("allowed_hosts", c.security.allowedHosts).
		Bool("docs", c.docs.enabled).
		Str("openapi_url", c.docs.openAPIURL).
		Str("tmp_dir", c.paths.tmpDir).
		Str("uploads_dir", c.paths.uploadsDir).
		Str("data_dir", c.paths.dataDir)
}
