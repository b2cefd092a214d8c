// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-voice-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their preferences.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// GetSettings returns the stored preferences; ok is false when the user
	// never saved any.
	GetSettings(ctx context.Context, userID int64) (settings models.UserSettings, ok bool, err error)
	SaveSettings(ctx context.Context, userID int64, settings models.UserSettings) error
}

// NoteRepository is the relational owner of record for notes and their
// share grants.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	ListUserNotes(ctx context.Context, userID int64) ([]models.Note, error)
	ListSharedNotes(ctx context.Context, email string) ([]models.Note, error)
	ListAllNotes(ctx context.Context) ([]models.Note, error)
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	AddShare(ctx context.Context, noteID string, grant models.ShareGrant) (models.Note, error)
}

// NoteStorage is a [NoteRepository] that also keeps the full text index in
// step with every write.
type NoteStorage interface {
	NoteRepository
	Search(ctx context.Context, userID int64, query string, limit int) ([]models.Note, error)
	// Reindex rebuilds the full text index from the repository.
	Reindex(ctx context.Context) error
}

// TranscriptionRepository persists transcriptions.
type TranscriptionRepository interface {
	CreateTranscription(ctx context.Context, t models.Transcription) (models.Transcription, error)
	GetTranscription(ctx context.Context, id string, userID int64) (models.Transcription, error)
	ListTranscriptions(ctx context.Context, userID int64) ([]models.Transcription, error)
	FinalizeTranscription(ctx context.Context, id string, userID int64, text string, at time.Time) (models.Transcription, error)
	CountTranscriptionsSince(ctx context.Context, userID int64, since time.Time) (int, error)
}

// AudioFileStorage archives uploaded recordings on disk.
type AudioFileStorage interface {
	SaveAudio(ctx context.Context, userID int64, transcriptionID, ext string, r io.Reader) (string, error)
}
