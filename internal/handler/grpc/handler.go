// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the notes.v1.NoteWatch gRPC transport: server
// streams that push note snapshots to clients as they change.
package grpc

import (
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/watchrpc"
)

// Handler serves NoteWatch. Tokens are checked by its interceptors, and
// streams are fed by the watch service.
type Handler struct {
	auth   service.AuthService
	watch  service.WatchService
	logger *logger.Logger
}

var _ watchrpc.NoteWatchServer = (*Handler)(nil)

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	return &Handler{
		auth:   services.AuthService,
		watch:  services.WatchService,
		logger: logger,
	}
}
