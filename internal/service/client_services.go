// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
)

// ClientServices groups the services the terminal client is built from.
type ClientServices struct {
	AuthService          ClientAuthService
	NotesService         ClientNotesService
	SettingsService      ClientSettingsService
	TranscriptionService ClientTranscriptionService
	InfoService          ClientInfoService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, documents DocumentStore, logger *logger.Logger) *ClientServices {
	notes := NewClientNotesService(documents, storages.NotesCache, logger)

	return &ClientServices{
		AuthService:          NewClientAuthService(serverAdapter, storages.SessionRepository, logger),
		NotesService:         notes,
		SettingsService:      NewClientSettingsService(serverAdapter, storages.SettingsCache, logger),
		TranscriptionService: NewClientTranscriptionService(serverAdapter, notes, logger),
		InfoService:          NewClientInfoService(serverAdapter),
	}
}
