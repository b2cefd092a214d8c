// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/models"
)

// ─────────────────────────────────────────────
// Service stubs
// ─────────────────────────────────────────────

const goodToken = "good.jwt.token"

var alice = models.Caller{UserID: 7, Email: "alice@example.com"}

type stubAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return s.registerFn(ctx, user)
}

func (s *stubAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return s.loginFn(ctx, user)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if s.createTokenFn != nil {
		return s.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "issued." + user.Email}, nil
}

// ParseToken accepts goodToken only and resolves it to alice.
func (s *stubAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != goodToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: alice.UserID, Email: alice.Email}, nil
}

// stubNoteService records its last call and answers with note, notes and err.
type stubNoteService struct {
	note  models.Note
	notes []models.Note
	err   error

	calls     int
	gotCaller models.Caller
	gotID     string
	gotDraft  models.NoteDraft
	gotUpdate models.NoteUpdate
	gotShare  models.ShareRequest
	gotQuery  string
	gotLimit  int
}

func (s *stubNoteService) CreateNote(_ context.Context, caller models.Caller, draft models.NoteDraft) (models.Note, error) {
	s.calls++
	s.gotCaller, s.gotDraft = caller, draft
	return s.note, s.err
}

func (s *stubNoteService) GetNote(_ context.Context, caller models.Caller, noteID string) (models.Note, error) {
	s.calls++
	s.gotCaller, s.gotID = caller, noteID
	return s.note, s.err
}

func (s *stubNoteService) ListNotes(_ context.Context, caller models.Caller) ([]models.Note, error) {
	s.calls++
	s.gotCaller = caller
	return s.notes, s.err
}

func (s *stubNoteService) ListSharedNotes(_ context.Context, caller models.Caller) ([]models.Note, error) {
	s.calls++
	s.gotCaller = caller
	return s.notes, s.err
}

func (s *stubNoteService) UpdateNote(_ context.Context, caller models.Caller, noteID string, update models.NoteUpdate) (models.Note, error) {
	s.calls++
	s.gotCaller, s.gotID, s.gotUpdate = caller, noteID, update
	return s.note, s.err
}

func (s *stubNoteService) DeleteNote(_ context.Context, caller models.Caller, noteID string) error {
	s.calls++
	s.gotCaller, s.gotID = caller, noteID
	return s.err
}

func (s *stubNoteService) ShareNote(_ context.Context, caller models.Caller, noteID string, req models.ShareRequest) (models.Note, error) {
	s.calls++
	s.gotCaller, s.gotID, s.gotShare = caller, noteID, req
	return s.note, s.err
}

func (s *stubNoteService) SearchNotes(_ context.Context, caller models.Caller, query string, limit int) ([]models.Note, error) {
	s.calls++
	s.gotCaller, s.gotQuery, s.gotLimit = caller, query, limit
	return s.notes, s.err
}

type stubSettingsService struct {
	settings  models.UserSettings
	err       error
	gotUserID int64
	gotUpdate models.SettingsUpdate
}

func (s *stubSettingsService) GetSettings(_ context.Context, userID int64) (models.UserSettings, error) {
	s.gotUserID = userID
	return s.settings, s.err
}

func (s *stubSettingsService) UpdateSettings(_ context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error) {
	s.gotUserID, s.gotUpdate = userID, update
	return update.Apply(s.settings), s.err
}

type stubTranscriptionService struct {
	transcription models.Transcription
	list          []models.Transcription
	err           error

	gotUserID      int64
	gotRecordingID string
	gotFileName    string
	gotAudio       string
	gotID          string
	gotText        string
}

func (s *stubTranscriptionService) Transcribe(_ context.Context, userID int64, recordingID, fileName string, audio io.Reader) (models.Transcription, error) {
	data, _ := io.ReadAll(audio)
	s.gotUserID, s.gotRecordingID, s.gotFileName, s.gotAudio = userID, recordingID, fileName, string(data)
	return s.transcription, s.err
}

func (s *stubTranscriptionService) GetTranscription(_ context.Context, userID int64, id string) (models.Transcription, error) {
	s.gotUserID, s.gotID = userID, id
	return s.transcription, s.err
}

func (s *stubTranscriptionService) ListTranscriptions(_ context.Context, userID int64) ([]models.Transcription, error) {
	s.gotUserID = userID
	return s.list, s.err
}

func (s *stubTranscriptionService) FinalizeTranscription(_ context.Context, userID int64, id, text string) (models.Transcription, error) {
	s.gotUserID, s.gotID, s.gotText = userID, id, text
	return s.transcription, s.err
}

type stubAppInfoService struct {
	version models.VersionResponse
}

func (s *stubAppInfoService) GetAppVersion(context.Context) models.VersionResponse {
	return s.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testDeps struct {
	auth           *stubAuthService
	notes          *stubNoteService
	settings       *stubSettingsService
	transcriptions *stubTranscriptionService
	info           *stubAppInfoService
}

func newTestDeps() *testDeps {
	return &testDeps{
		auth:           &stubAuthService{},
		notes:          &stubNoteService{},
		settings:       &stubSettingsService{settings: models.DefaultSettings()},
		transcriptions: &stubTranscriptionService{},
		info:           &stubAppInfoService{version: models.VersionResponse{Version: "v1.2.3", Date: "2026-05-01", Commit: "abc123"}},
	}
}

func (d *testDeps) services() *service.Services {
	return &service.Services{
		AuthService:          d.auth,
		NoteService:          d.notes,
		SettingsService:      d.settings,
		TranscriptionService: d.transcriptions,
		AppInfoService:       d.info,
	}
}

func newTestRouter(t *testing.T, d *testDeps, hashKey string) http.Handler {
	t.Helper()
	cfg := config.Server{MaxUploadBytes: 1 << 20}
	return NewHandler(d.services(), cfg, hashKey, logger.Nop()).Init()
}

// serve runs req through router. A non-empty token is sent as a bearer token.
func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
