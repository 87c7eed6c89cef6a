// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/apiconf/internal/config"
	"github.com/MKhiriev/apiconf/internal/mock"
)

var plainLaunch = config.LaunchContext{Program: "apiserver"}

// ── helpers ───────────────────────────────────────────────────────────────────

func sourceReturning(ctrl *gomock.Controller, raw config.RawSettings, err error) *mock.MockSource {
	src := mock.NewMockSource(ctrl)
	src.EXPECT().Load().Return(raw, err).Times(1)
	return src
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── Build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers resolves the
// declarative defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := config.NewBuilder().Build(plainLaunch)
	require.NoError(t, err)
	assert.Equal(t, "service-api", cfg.Slug())
	assert.Equal(t, 8000, cfg.Port())
}

// TestBuild_LaterLayersOverride verifies that a later source wins for the
// same key while nested groups are merged key by key.
func TestBuild_LaterLayersOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lower := sourceReturning(ctrl, config.RawSettings{
		"name": "Lower",
		"port": 8080,
		"docs": map[string]any{"title": "From lower", "enabled": true},
		"security": map[string]any{
			"allowed_hosts": []string{"lower.example.com", "other.example.com"},
		},
	}, nil)
	upper := sourceReturning(ctrl, config.RawSettings{
		"name": "Upper API",
		"docs": map[string]any{"enabled": "false"},
		"security": map[string]any{
			"allowed_hosts": []string{"upper.example.com"},
		},
	}, nil)

	cfg, err := config.NewBuilder().WithSource(lower).WithSource(upper).Build(plainLaunch)

	require.NoError(t, err)
	assert.Equal(t, "Upper API", cfg.Name())
	assert.Equal(t, 8080, cfg.Port())
	assert.Equal(t, "From lower", cfg.Docs().Title())
	assert.False(t, cfg.Docs().Enabled())
	assert.Equal(t, []string{"upper.example.com"}, cfg.Security().AllowedHosts())
}

// TestBuild_JoinsSourceErrors verifies that every failing source is reported
// and no config is produced.
func TestBuild_JoinsSourceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	errFirst := errors.New("first source down")
	errSecond := errors.New("second source down")

	cfg, err := config.NewBuilder().
		WithSource(sourceReturning(ctrl, nil, errFirst)).
		WithSource(sourceReturning(ctrl, config.RawSettings{"port": 9000}, nil)).
		WithSource(sourceReturning(ctrl, nil, errSecond)).
		Build(plainLaunch)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
	assert.Contains(t, err.Error(), "error occurred during building config")
}

// TestBuild_ResolutionErrorPropagates verifies that validation failures of
// the merged settings surface as *config.ResolutionError.
func TestBuild_ResolutionErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg, err := config.NewBuilder().
		WithSource(sourceReturning(ctrl, config.RawSettings{"port": 79}, nil)).
		Build(plainLaunch)

	assert.Nil(t, cfg)
	var re *config.ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, config.KeyPort, re.Step)
}

// ── WithJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_FileIsLowestLayer verifies that the JSON file named by a
// loaded layer is merged beneath every other layer.
func TestWithJSON_FileIsLowestLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := writeConfigFile(t, `{"name": "From File", "port": 8081, "version": "3"}`)
	env := sourceReturning(ctrl, config.RawSettings{"config_file": path, "port": "9000"}, nil)

	cfg, err := config.NewBuilder().WithSource(env).WithJSON().Build(plainLaunch)

	require.NoError(t, err)
	assert.Equal(t, "From File", cfg.Name())
	assert.Equal(t, 9000, cfg.Port())
	assert.Equal(t, "/api/v3", cfg.Prefix())
}

// TestWithJSON_LastConfigFileWins verifies that when several layers name a
// file, the highest priority one is used.
func TestWithJSON_LastConfigFileWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := writeConfigFile(t, `{"name": "First File"}`)
	second := writeConfigFile(t, `{"name": "Second File"}`)

	cfg, err := config.NewBuilder().
		WithSource(sourceReturning(ctrl, config.RawSettings{"config_file": first}, nil)).
		WithSource(sourceReturning(ctrl, config.RawSettings{"config_file": second}, nil)).
		WithJSON().
		Build(plainLaunch)

	require.NoError(t, err)
	assert.Equal(t, "Second File", cfg.Name())
}

// TestWithJSON_NoFile verifies that WithJSON is a no-op without config_file.
func TestWithJSON_NoFile(t *testing.T) {
	cfg, err := config.NewBuilder().WithJSON().Build(plainLaunch)
	require.NoError(t, err)
	assert.Equal(t, "Service API", cfg.Name())
}

// TestWithJSON_BadFile verifies that a broken file fails the build.
func TestWithJSON_BadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := writeConfigFile(t, `{ broken`)

	cfg, err := config.NewBuilder().
		WithSource(sourceReturning(ctrl, config.RawSettings{"config_file": path}, nil)).
		WithJSON().
		Build(plainLaunch)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_EnvOverJSON verifies the default layering of Load.
func TestLoad_EnvOverJSON(t *testing.T) {
	path := writeConfigFile(t, `{"name": "File API", "port": 8081, "docs": {"title": "File docs"}}`)
	t.Setenv("API_CONFIG_FILE", path)
	t.Setenv("API_PORT", "9000")
	t.Setenv("API_DOCS__ENABLED", "false")

	cfg, err := config.Load(plainLaunch)

	require.NoError(t, err)
	assert.Equal(t, "File API", cfg.Name())
	assert.Equal(t, 9000, cfg.Port())
	assert.Equal(t, "File docs", cfg.Docs().Title())
	assert.False(t, cfg.Docs().Enabled())
}

// TestLoad_WithFlags verifies that flags of the binary override the
// environment.
func TestLoad_WithFlags(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("API_NAME", "Env API")

	launch := config.NewLaunchContext([]string{"apiserver", "-a", "127.0.0.1:9500"})

	cfg, err := config.NewBuilder().WithEnv().WithFlags(launch).WithJSON().Build(launch)

	require.NoError(t, err)
	assert.Equal(t, "Env API", cfg.Name())
	assert.Equal(t, "127.0.0.1", cfg.BindHost())
	assert.Equal(t, 9500, cfg.Port())
}

// TestLoad_WithFlagsUnderLauncher verifies that launcher arguments are not
// parsed as flags of the binary but still reach the launch override.
func TestLoad_WithFlagsUnderLauncher(t *testing.T) {
	launch := config.NewLaunchContext([]string{"/usr/bin/uvicorn", "app:main", "--host", "10.0.0.5", "--port=9100"})

	cfg, err := config.NewBuilder().WithFlags(launch).Build(launch)

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.BindHost())
	assert.Equal(t, 9100, cfg.Port())
}
