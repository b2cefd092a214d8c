// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Theme is the colour scheme selected by the user.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserSettings holds per-user preferences.
type UserSettings struct {
	Theme         Theme  `json:"theme" yaml:"theme"`
	Notifications bool   `json:"notifications" yaml:"notifications"`
	Language      string `json:"language" yaml:"language"`
}

// DefaultSettings returns the preferences of a user who never changed them.
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:         ThemeLight,
		Notifications: true,
		Language:      "en",
	}
}

// SettingsUpdate is a partial update of UserSettings.
type SettingsUpdate struct {
	Theme         *Theme  `json:"theme,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	Language      *string `json:"language,omitempty"`
}

// Apply merges the update into s.
func (u SettingsUpdate) Apply(s UserSettings) UserSettings {
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.Notifications != nil {
		s.Notifications = *u.Notifications
	}
	if u.Language != nil {
		s.Language = *u.Language
	}
	return s
}
