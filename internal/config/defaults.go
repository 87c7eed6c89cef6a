// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// DefaultSettings returns the declarative defaults every setting falls back
// to when no source provides it. A fresh map is returned on each call.
func DefaultSettings() RawSettings {
	return RawSettings{
		KeyName:          "Service API",
		KeySlug:          "",
		KeyHTTPScheme:    string(SchemeHTTP),
		KeyBindHost:      WildcardHost,
		KeyPort:          8000,
		KeyVersion:       "1",
		KeyPrefix:        "/api/v" + TokenAPIVersion,
		KeyGzipMinSize:   512,
		KeyBehindProxy:   true,
		KeyBehindCFProxy: false,
		KeyDev: map[string]any{
			"debug":     false,
			"reload":    false,
			"log_level": "info",
		},
		KeySecurity: map[string]any{
			"ssl": map[string]any{
				"enabled":   false,
				"cert_file": "",
				"key_file":  "",
			},
			"allowed_hosts":       []string{"*"},
			"forwarded_allow_ips": []string{LoopbackHost},
		},
		KeyDocs: map[string]any{
			"enabled":                        true,
			"title":                          "",
			"description":                    "",
			"openapi_url":                    TokenAPIPrefix + "/openapi.json",
			"docs_url":                       TokenAPIPrefix + "/docs",
			"redoc_url":                      TokenAPIPrefix + "/redoc",
			"swagger_ui_oauth2_redirect_url": TokenAPIPrefix + "/docs/oauth2-redirect",
		},
		KeyPaths: map[string]any{
			"tmp_dir":     "/tmp/" + TokenAPISlug,
			"uploads_dir": TokenTmpDir + "/uploads",
			"data_dir":    "./data/" + TokenAPISlug,
		},
	}
}
