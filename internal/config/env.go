// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envSettings mirrors the settings tree as environment variables. Every
// field is a pointer so that unset or empty variables stay nil and do not
// shadow lower layers. Nested groups use "__" between the group and field names.
type envSettings struct {
	ConfigFile    *string `env:"CONFIG_FILE"`
	Name          *string `env:"NAME"`
	Slug          *string `env:"SLUG"`
	HTTPScheme    *string `env:"HTTP_SCHEME"`
	BindHost      *string `env:"BIND_HOST"`
	Port          *string `env:"PORT"`
	Version       *string `env:"VERSION"`
	Prefix        *string `env:"PREFIX"`
	GzipMinSize   *string `env:"GZIP_MIN_SIZE"`
	BehindProxy   *string `env:"BEHIND_PROXY"`
	BehindCFProxy *string `env:"BEHIND_CF_PROXY"`

	Dev      envDev      `envPrefix:"DEV__"`
	Security envSecurity `envPrefix:"SECURITY__"`
	Docs     envDocs     `envPrefix:"DOCS__"`
	Paths    envPaths    `envPrefix:"PATHS__"`
}

type envDev struct {
	Debug    *string `env:"DEBUG"`
	Reload   *string `env:"RELOAD"`
	LogLevel *string `env:"LOG_LEVEL"`
}

type envSSL struct {
	Enabled  *string `env:"ENABLED"`
	CertFile *string `env:"CERT_FILE"`
	KeyFile  *string `env:"KEY_FILE"`
}

type envSecurity struct {
	SSL envSSL `envPrefix:"SSL__"`
	// Lists are comma separated.
	AllowedHosts      *string `env:"ALLOWED_HOSTS"`
	ForwardedAllowIPs *string `env:"FORWARDED_ALLOW_IPS"`
}

type envDocs struct {
	Enabled           *string `env:"ENABLED"`
	Title             *string `env:"TITLE"`
	Description       *string `env:"DESCRIPTION"`
	OpenAPIURL        *string `env:"OPENAPI_URL"`
	DocsURL           *string `env:"DOCS_URL"`
	RedocURL          *string `env:"REDOC_URL"`
	OAuth2RedirectURL *string `env:"SWAGGER_UI_OAUTH2_REDIRECT_URL"`
}

type envPaths struct {
	TmpDir     *string `env:"TMP_DIR"`
	UploadsDir *string `env:"UPLOADS_DIR"`
	DataDir    *string `env:"DATA_DIR"`
}

// EnvSource reads settings from API_-prefixed environment variables, e.g.
// API_PORT, API_DOCS__OPENAPI_URL or API_SECURITY__SSL__ENABLED. Values are
// kept as strings; the resolver coerces them.
type EnvSource struct {
	environ map[string]string
}

// NewEnvSource returns a Source over the process environment.
func NewEnvSource() *EnvSource {
	return &EnvSource{}
}

// NewEnvSourceFrom returns a Source over the given variables instead of the
// process environment.
func NewEnvSourceFrom(environ map[string]string) *EnvSource {
	return &EnvSource{environ: environ}
}

// Load implements [Source].
func (s *EnvSource) Load() (RawSettings, error) {
	parsed, err := env.ParseAsWithOptions[envSettings](env.Options{
		Prefix:      EnvPrefix,
		Environment: s.environ,
	})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	raw := RawSettings{}
	for path, v := range parsed.values() {
		if v != nil {
			raw.Set(path, *v)
		}
	}
	return raw, nil
}

func (e *envSettings) values() map[string]*string {
	return map[string]*string{
		KeyConfigFile:    e.ConfigFile,
		KeyName:          e.Name,
		KeySlug:          e.Slug,
		KeyHTTPScheme:    e.HTTPScheme,
		KeyBindHost:      e.BindHost,
		KeyPort:          e.Port,
		KeyVersion:       e.Version,
		KeyPrefix:        e.Prefix,
		KeyGzipMinSize:   e.GzipMinSize,
		KeyBehindProxy:   e.BehindProxy,
		KeyBehindCFProxy: e.BehindCFProxy,

		"dev.debug":     e.Dev.Debug,
		"dev.reload":    e.Dev.Reload,
		"dev.log_level": e.Dev.LogLevel,

		"security.ssl.enabled":         e.Security.SSL.Enabled,
		"security.ssl.cert_file":       e.Security.SSL.CertFile,
		"security.ssl.key_file":        e.Security.SSL.KeyFile,
		"security.allowed_hosts":       e.Security.AllowedHosts,
		"security.forwarded_allow_ips": e.Security.ForwardedAllowIPs,

		"docs.enabled":                        e.Docs.Enabled,
		"docs.title":                          e.Docs.Title,
		"docs.description":                    e.Docs.Description,
		"docs.openapi_url":                    e.Docs.OpenAPIURL,
		"docs.docs_url":                       e.Docs.DocsURL,
		"docs.redoc_url":                      e.Docs.RedocURL,
		"docs.swagger_ui_oauth2_redirect_url": e.Docs.OAuth2RedirectURL,

		"paths.tmp_dir":     e.Paths.TmpDir,
		"paths.uploads_dir": e.Paths.UploadsDir,
		"paths.data_dir":    e.Paths.DataDir,
	}
}
