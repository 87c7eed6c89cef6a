// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "IPv6 address", addr: NetAddress{Host: "::1", Port: 9090}, expected: "[::1]:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      NetAddress
		expectErr bool
	}{
		{name: "valid IP and port", input: "127.0.0.1:8080", want: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{name: "hostname", input: "api.internal:9000", want: NetAddress{Host: "api.internal", Port: 9000}},
		{name: "bracketed IPv6", input: "[::1]:8443", want: NetAddress{Host: "::1", Port: 8443}},
		{name: "missing port", input: "localhost", expectErr: true},
		{name: "non-numeric port", input: "localhost:http", expectErr: true},
		{name: "too many colons", input: "a:b:c", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestFlagSource_Load(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want RawSettings
	}{
		{name: "no flags", args: nil, want: RawSettings{}},
		{
			name: "address",
			args: []string{"-a", "127.0.0.1:9000"},
			want: RawSettings{KeyBindHost: "127.0.0.1", KeyPort: 9000},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/api.json"},
			want: RawSettings{KeyConfigFile: "/etc/api.json"},
		},
		{
			name: "all flags",
			args: []string{"-c", "cfg.json", "-name", "Orders API", "-prefix", "/orders", "-log-level", "warn", "-debug"},
			want: RawSettings{
				KeyConfigFile: "cfg.json",
				KeyName:       "Orders API",
				KeyPrefix:     "/orders",
				KeyDev:        map[string]any{"log_level": "warn", "debug": true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := NewFlagSource("apiserver", tt.args).Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, raw)
		})
	}
}

func TestFlagSource_Errors(t *testing.T) {
	for _, args := range [][]string{{"-a", "nonsense"}, {"-unknown"}, {"-name"}} {
		t.Run(args[0], func(t *testing.T) {
			raw, err := NewFlagSource("apiserver", args).Load()
			require.Error(t, err)
			assert.Nil(t, raw)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
