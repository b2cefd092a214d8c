// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/models"
)

type clientSettingsService struct {
	adapter adapter.ServerAdapter
	cache   store.LocalSettingsCache
	logger  *logger.Logger
}

func NewClientSettingsService(serverAdapter adapter.ServerAdapter, cache store.LocalSettingsCache, logger *logger.Logger) ClientSettingsService {
	return &clientSettingsService{adapter: serverAdapter, cache: cache, logger: logger}
}

func (s *clientSettingsService) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	settings, err := s.adapter.GetSettings(ctx)
	if err == nil {
		s.save(ctx, userID, settings)
		return settings, nil
	}
	s.logger.Warn().Err(err).Int64("user_id", userID).Msg("loading settings from server failed, using local copy")

	cached, ok, cerr := s.cache.LoadSettings(ctx, userID)
	if cerr != nil {
		s.logger.Warn().Err(cerr).Int64("user_id", userID).Msg("loading cached settings failed")
	}
	if ok {
		return cached, nil
	}
	return models.DefaultSettings(), nil
}

func (s *clientSettingsService) UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error) {
	if update.Theme != nil && *update.Theme != models.ThemeLight && *update.Theme != models.ThemeDark {
		return models.UserSettings{}, &ValidationError{Field: "theme", Reason: "must be light or dark"}
	}
	if update.Language != nil && !languageTag.MatchString(*update.Language) {
		return models.UserSettings{}, &ValidationError{Field: "language", Reason: "must look like en or en-US"}
	}

	settings, err := s.adapter.UpdateSettings(ctx, update)
	if err != nil {
		return models.UserSettings{}, mapAdapterError(err)
	}
	s.save(ctx, userID, settings)
	return settings, nil
}

func (s *clientSettingsService) save(ctx context.Context, userID int64, settings models.UserSettings) {
	if err := s.cache.SaveSettings(ctx, userID, settings); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("caching settings failed")
	}
}
