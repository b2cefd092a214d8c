// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/internal/transcriber"
	"github.com/MKhiriev/go-voice-notes/models"
)

type Services struct {
	AuthService          AuthService
	NoteService          NoteService
	WatchService         WatchService
	SettingsService      SettingsService
	TranscriptionService TranscriptionService
	AppInfoService       AppInfoService
}

// NewServices wires the server services. t may be nil, in which case
// transcription requests fail with ErrTranscriberNotConfigured.
func NewServices(repos *store.Repositories, t transcriber.Transcriber, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo)
	if err != nil {
		return nil, err
	}

	hub := NewWatchHub(repos.NoteStorage, logger)

	return &Services{
		AuthService:          NewAuthService(repos.UserRepository, cfg.App, logger),
		NoteService:          NewNoteValidationService().Wrap(NewNoteService(repos.NoteStorage, hub, logger)),
		WatchService:         hub,
		SettingsService:      NewSettingsService(repos.UserRepository, logger),
		TranscriptionService: NewTranscriptionService(repos.TranscriptionRepository, repos.AudioFileStorage, t, cfg.App, logger),
		AppInfoService:       appInfo,
	}, nil
}
