// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	// hasher verifies the HashSHA256 header of JSON mutation bodies.
	// A disabled hasher accepts every request.
	hasher *utils.Hasher

	maxUploadBytes int64
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds a Handler. hashKey enables request integrity checks
// when it is not empty.
func NewHandler(services *service.Services, cfg config.Server, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hasher:         utils.NewHasher(hashKey),
		maxUploadBytes: cfg.MaxUploadBytes,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
