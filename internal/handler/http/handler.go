// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/apiconf/internal/config"
	"github.com/MKhiriev/apiconf/internal/logger"
)

type Handler struct {
	cfg *config.Config

	logger *logger.Logger
}

func NewHandler(cfg *config.Config, logger *logger.Logger) *Handler {
	logger.Info().Str("prefix", cfg.Prefix()).Msg("http handler created")
	return &Handler{
		cfg:    cfg,
		logger: logger,
	}
}
