// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is the prefix reserved for this service's environment
// variables. Nested groups use "__" as the delimiter, e.g.
// API_DOCS__OPENAPI_URL or API_SECURITY__SSL__ENABLED.
const EnvPrefix = "API_"

// Placeholder tokens that may appear inside templated settings. Each token
// is substituted once with the resolved value of another setting.
const (
	// TokenAPIVersion is replaced in prefix by the resolved version.
	TokenAPIVersion = "{api_version}"
	// TokenAPIPrefix is replaced in the docs URLs by the resolved prefix.
	TokenAPIPrefix = "{api_prefix}"
	// TokenAPISlug is replaced in the filesystem paths by the resolved slug.
	TokenAPISlug = "{api_slug}"
	// TokenTmpDir is replaced in uploads_dir by the resolved tmp_dir.
	TokenTmpDir = "{tmp_dir}"
)

// Setting keys. Nested keys are dotted paths into [RawSettings].
const (
	KeyName          = "name"
	KeySlug          = "slug"
	KeyHTTPScheme    = "http_scheme"
	KeyBindHost      = "bind_host"
	KeyPort          = "port"
	KeyVersion       = "version"
	KeyPrefix        = "prefix"
	KeyGzipMinSize   = "gzip_min_size"
	KeyBehindProxy   = "behind_proxy"
	KeyBehindCFProxy = "behind_cf_proxy"
	KeyConfigFile    = "config_file"

	KeyDev      = "dev"
	KeySecurity = "security"
	KeyDocs     = "docs"
	KeyPaths    = "paths"
)

// Scheme is the URL scheme the service is reachable under.
type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	return string(s)
}

// Bind addresses used when a recognized launcher gives no --host flag.
const (
	LoopbackHost = "127.0.0.1"
	WildcardHost = "0.0.0.0"
)
