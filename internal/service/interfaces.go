// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-voice-notes/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService applies the note access rules on top of the note storage.
// Every method acts on behalf of caller.
type NoteService interface {
	CreateNote(ctx context.Context, caller models.Caller, draft models.NoteDraft) (models.Note, error)
	GetNote(ctx context.Context, caller models.Caller, noteID string) (models.Note, error)

	// ListNotes returns the notes owned by caller, newest first.
	ListNotes(ctx context.Context, caller models.Caller) ([]models.Note, error)
	// ListSharedNotes returns the notes other users shared with caller's email.
	ListSharedNotes(ctx context.Context, caller models.Caller) ([]models.Note, error)

	UpdateNote(ctx context.Context, caller models.Caller, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, caller models.Caller, noteID string) error
	ShareNote(ctx context.Context, caller models.Caller, noteID string, req models.ShareRequest) (models.Note, error)

	SearchNotes(ctx context.Context, caller models.Caller, query string, limit int) ([]models.Note, error)
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation or change notification.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// WatchService streams snapshots of notes as they change.
//
// Each returned channel delivers the current state first and then one
// snapshot per observed change. It is closed when ctx is done or after a
// snapshot carrying a non-nil Err.
type WatchService interface {
	WatchUserNotes(ctx context.Context, caller models.Caller) (<-chan models.NotesSnapshot, error)
	WatchNote(ctx context.Context, caller models.Caller, noteID string) (<-chan models.NoteSnapshot, error)
}

// ChangeNotifier is told about every committed note write.
type ChangeNotifier interface {
	NoteChanged(ownerID int64, noteID string)
}

type SettingsService interface {
	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error)
}

type TranscriptionService interface {
	// Transcribe converts audio to a draft transcription owned by userID.
	Transcribe(ctx context.Context, userID int64, recordingID, fileName string, audio io.Reader) (models.Transcription, error)
	GetTranscription(ctx context.Context, userID int64, id string) (models.Transcription, error)
	ListTranscriptions(ctx context.Context, userID int64) ([]models.Transcription, error)
	// FinalizeTranscription stores reviewed text and marks the transcription final.
	FinalizeTranscription(ctx context.Context, userID int64, id, text string) (models.Transcription, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
