// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/models"
)

// languageTag accepts ISO-639-1 codes with an optional region, e.g. "en" or "pt-BR".
var languageTag = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

type settingsService struct {
	users  store.UserRepository
	logger *logger.Logger
}

func NewSettingsService(users store.UserRepository, logger *logger.Logger) SettingsService {
	return &settingsService{users: users, logger: logger}
}

// GetSettings returns the stored preferences over the defaults.
func (s *settingsService) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	stored, ok, err := s.users.GetSettings(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsService.GetSettings").Int64("user_id", userID).Msg("loading settings failed")
		return models.UserSettings{}, fmt.Errorf("get settings: %w", err)
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	return withDefaults(stored), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error) {
	if update.Theme != nil && *update.Theme != models.ThemeLight && *update.Theme != models.ThemeDark {
		return models.UserSettings{}, fmt.Errorf("%w: %q", ErrInvalidTheme, *update.Theme)
	}
	if update.Language != nil && !languageTag.MatchString(*update.Language) {
		return models.UserSettings{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, *update.Language)
	}

	current, err := s.GetSettings(ctx, userID)
	if err != nil {
		return models.UserSettings{}, err
	}

	next := update.Apply(current)
	if err = s.users.SaveSettings(ctx, userID, next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsService.UpdateSettings").Int64("user_id", userID).Msg("saving settings failed")
		return models.UserSettings{}, fmt.Errorf("save settings: %w", err)
	}
	return next, nil
}

func withDefaults(s models.UserSettings) models.UserSettings {
	d := models.DefaultSettings()
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	return s
}
