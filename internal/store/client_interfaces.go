// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the signed-in identity between client runs.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns [ErrLocalSessionNotFound] when nobody is signed in.
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

// LocalNotesCache keeps the last notes snapshot per user so that the list
// renders before the first live snapshot arrives.
type LocalNotesCache interface {
	SaveNotes(ctx context.Context, userID int64, notes []models.Note) error
	// LoadNotes returns an empty slice when nothing was cached.
	LoadNotes(ctx context.Context, userID int64) ([]models.Note, error)
	ClearNotes(ctx context.Context, userID int64) error
}

// LocalSettingsCache keeps the last known preferences per user.
type LocalSettingsCache interface {
	SaveSettings(ctx context.Context, userID int64, settings models.UserSettings) error
	// LoadSettings returns ok == false when nothing was cached.
	LoadSettings(ctx context.Context, userID int64) (settings models.UserSettings, ok bool, err error)
}
