// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-voice-notes/models"
)

// DocumentStore is the remote note store the client keeps its live note set
// in step with. Watch channels deliver full snapshots, never deltas, and
// close when ctx is done or after a snapshot carrying an error.
type DocumentStore interface {
	WatchUserNotes(ctx context.Context, userID int64) (<-chan models.NotesSnapshot, error)
	WatchNote(ctx context.Context, noteID string) (<-chan models.NoteSnapshot, error)
	AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) error
	DeleteNote(ctx context.Context, noteID string) error
	ShareNote(ctx context.Context, noteID string, grant models.ShareGrant) error
}

// ClientNotesService is the live note set of the signed-in user.
type ClientNotesService interface {
	// SubscribeUserNotes delivers the user's notes ordered by CreatedAt,
	// newest first, on every change. A terminal store failure is passed to
	// onError as a *StoreError. onError may be nil.
	SubscribeUserNotes(ctx context.Context, userID int64, onSnapshot func([]models.Note), onError func(error)) (*Subscription[[]models.Note], error)

	// SubscribeNote delivers one note on every change. A nil note means it
	// does not exist or was deleted.
	SubscribeNote(ctx context.Context, noteID string, onSnapshot func(*models.Note), onError func(error)) (*Subscription[*models.Note], error)

	// Create stores a new note and returns its identifier.
	Create(ctx context.Context, draft models.NoteDraft) (string, error)
	Update(ctx context.Context, noteID string, update models.NoteUpdate) error
	Delete(ctx context.Context, noteID string) error
	Share(ctx context.Context, noteID, email string, canEdit bool) error

	// CachedUserNotes returns the last list persisted on this device.
	CachedUserNotes(ctx context.Context, userID int64) ([]models.Note, error)
}

// ClientAuthService signs the user in and keeps the session between runs.
type ClientAuthService interface {
	Register(ctx context.Context, email, password string) (models.Session, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context) error

	// Restore loads the persisted session. ok is false when nobody is
	// signed in on this device.
	Restore(ctx context.Context) (session models.Session, ok bool, err error)
	CurrentUser() (models.Session, bool)

	// OnAuthStateChanged calls fn with the current state right away and
	// after every sign-in or sign-out until unsubscribe is called.
	OnAuthStateChanged(fn func(session models.Session, signedIn bool)) (unsubscribe func())
}

// ClientSettingsService reads and changes the user's preferences.
type ClientSettingsService interface {
	// GetSettings prefers the server, then the local cache, then defaults.
	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error)
}

// ClientTranscriptionService turns recordings into notes.
type ClientTranscriptionService interface {
	Transcribe(ctx context.Context, recordingID, fileName string, audio io.Reader) (models.Transcription, error)
	// TranscribeFile uploads the file at path under a fresh recording id.
	TranscribeFile(ctx context.Context, path string) (models.Transcription, error)
	Finalize(ctx context.Context, id, text string) (models.Transcription, error)
	List(ctx context.Context) ([]models.Transcription, error)

	// CreateNote creates a note from the transcription text with a back
	// reference to it. An empty title is derived from the creation time.
	CreateNote(ctx context.Context, t models.Transcription, title string) (string, error)
}

// ClientInfoService reports the server build.
type ClientInfoService interface {
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
