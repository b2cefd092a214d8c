// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the voice notes server.
//
// [ServerAdapter] covers the request/response API over HTTP (resty) and
// [WatchAdapter] covers the live note streams over gRPC. [DocumentStore]
// combines both into the document store the client services consume.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from gRPC codes by mapGRPCError so that callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-voice-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines request/response communication with the server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success it stores the returned bearer
	// token via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with email and password. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.User, error)

	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	ListSharedNotes(ctx context.Context) ([]models.Note, error)
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	ShareNote(ctx context.Context, noteID string, req models.ShareRequest) (models.Note, error)
	SearchNotes(ctx context.Context, query string, limit int) ([]models.Note, error)

	GetSettings(ctx context.Context) (models.UserSettings, error)
	UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.UserSettings, error)

	// Transcribe uploads audio as a multipart form. fileName supplies the
	// format hint.
	Transcribe(ctx context.Context, recordingID, fileName string, audio io.Reader) (models.Transcription, error)
	ListTranscriptions(ctx context.Context) ([]models.Transcription, error)
	GetTranscription(ctx context.Context, id string) (models.Transcription, error)
	FinalizeTranscription(ctx context.Context, id, text string) (models.Transcription, error)

	GetVersion(ctx context.Context) (models.VersionResponse, error)
}

// WatchAdapter opens live note streams. Each channel is closed when ctx is
// done or after a snapshot carrying an error.
type WatchAdapter interface {
	WatchUserNotes(ctx context.Context, userID int64) (<-chan models.NotesSnapshot, error)
	WatchNote(ctx context.Context, noteID string) (<-chan models.NoteSnapshot, error)
	Close() error
}

// TokenSource supplies the current bearer token.
type TokenSource interface {
	Token() string
}
