// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_AddressAndURL(t *testing.T) {
	tests := []struct {
		name        string
		raw         RawSettings
		launch      LaunchContext
		wantAddress string
		wantURL     string
	}{
		{
			name:        "defaults",
			wantAddress: "0.0.0.0:8000",
			wantURL:     "http://0.0.0.0:8000/api/v1",
		},
		{
			name:        "ipv6 host",
			raw:         RawSettings{KeyBindHost: "::1", KeyPrefix: ""},
			wantAddress: "[::1]:8000",
			wantURL:     "http://[::1]:8000",
		},
		{
			name:        "https under launcher",
			launch:      LaunchContext{Program: "uvicorn", Args: []string{"--ssl-certfile=c.pem", "--port", "8443"}},
			wantAddress: "127.0.0.1:8443",
			wantURL:     "https://127.0.0.1:8443/api/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustResolve(t, tt.raw, tt.launch)
			assert.Equal(t, tt.wantAddress, cfg.Address())
			assert.Equal(t, tt.wantURL, cfg.URL().String())
		})
	}
}

func TestConfig_MarshalZerologObject(t *testing.T) {
	cfg := mustResolve(t, sslOn, noLauncher)

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	l.Info().Object("config", cfg).Msg("")

	var line struct {
		Config map[string]any `json:"config"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "service-api", line.Config["slug"])
	assert.Equal(t, "https", line.Config["scheme"])
	assert.Equal(t, "0.0.0.0:8000", line.Config["address"])
	assert.Equal(t, true, line.Config["ssl"])
	assert.Equal(t, "/api/v1/openapi.json", line.Config["openapi_url"])
	assert.NotContains(t, buf.String(), "key.pem")
}
