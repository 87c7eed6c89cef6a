// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/apiconf/internal/config"
	myHTTP "github.com/MKhiriev/apiconf/internal/handler/http"
	"github.com/MKhiriev/apiconf/internal/logger"
	"github.com/MKhiriev/apiconf/internal/metrics"
	"github.com/MKhiriev/apiconf/internal/server"
	"github.com/MKhiriev/apiconf/internal/validators"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const role = "apiconf-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewLogger(role)

	launch := config.NewLaunchContext(os.Args)
	cfg, err := config.NewBuilder().
		WithEnv().
		WithFlags(launch).
		WithJSON().
		Build(launch, config.WithLogger(log.GetChildLogger()))
	if err != nil {
		resolutionFailure(log.Fatal(), err).Msg("error resolving configs")
	}

	for _, dir := range cfg.Paths().All() {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("error creating directory")
		}
	}

	fileLog, err := logger.NewFileLogger(role, filepath.Join(cfg.Paths().DataDir(), "logs"))
	if err != nil {
		log.Fatal().Err(err).Msg("error opening log file")
	}
	log = fileLog
	if err = log.SetLevel(logLevel(cfg.Dev())); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping debug")
	}
	if cfg.Dev().Reload() {
		log.Warn().Msg("dev.reload has no effect, restart the process to apply changes")
	}

	log.Info().Object("config", cfg).Msg("configs resolved")

	metrics.SetConfigInfo(metrics.Info{
		Name:    cfg.Name(),
		Slug:    cfg.Slug(),
		Version: cfg.Version(),
		Scheme:  cfg.Scheme().String(),
		Prefix:  cfg.Prefix(),
		Docs:    cfg.Docs().Enabled(),
	})

	handler := myHTTP.NewHandler(cfg, log)
	srv, err := server.NewServer(handler.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("url", cfg.URL().String()).Msg("serving")
	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// logLevel returns the configured level, forced to debug in debug mode.
func logLevel(dev config.Dev) string {
	if dev.Debug() {
		return "debug"
	}
	return dev.LogLevel()
}

// resolutionFailure adds the stage, step, field and rule of err to e when
// err carries them.
func resolutionFailure(e *zerolog.Event, err error) *zerolog.Event {
	e = e.Err(err)

	var resErr *config.ResolutionError
	if errors.As(err, &resErr) {
		e = e.Stringer("stage", resErr.Stage).Str("step", resErr.Step)
	}
	var violation *validators.ConstraintViolation
	if errors.As(err, &violation) {
		e = e.Str("field", violation.Field).Str("rule", violation.Rule)
	}
	return e
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
