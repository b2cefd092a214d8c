// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and prepares the body signer when appCfg.HashKey is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, hasher: utils.NewHasher(appCfg.HashKey), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter] and [TokenSource].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var found models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&found).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	if found.Email == "" {
		found.Email = user.Email
	}
	return found, nil
}

// CreateNote implements [ServerAdapter] via POST /api/notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	var note models.Note
	err := h.doJSON(ctx, resty.MethodPost, "/api/notes", draft, &note)
	return note, err
}

// GetNote implements [ServerAdapter] via GET /api/notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note
	err := h.doJSON(ctx, resty.MethodGet, notePath(noteID), nil, &note)
	return note, err
}

// ListNotes implements [ServerAdapter] via GET /api/notes.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var resp models.NotesResponse
	if err := h.doJSON(ctx, resty.MethodGet, "/api/notes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

// ListSharedNotes implements [ServerAdapter] via GET /api/notes/shared.
func (h *httpServerAdapter) ListSharedNotes(ctx context.Context) ([]models.Note, error) {
	var resp models.NotesResponse
	if err := h.doJSON(ctx, resty.MethodGet, "/api/notes/shared", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

// UpdateNote implements [ServerAdapter] via PATCH /api/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	var note models.Note
	err := h.doJSON(ctx, resty.MethodPatch, notePath(noteID), update, &note)
	return note, err
}

// DeleteNote implements [ServerAdapter] via DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	return h.doJSON(ctx, resty.MethodDelete, notePath(noteID), nil, nil)
}

// ShareNote implements [ServerAdapter] via POST /api/notes/{id}/share.
func (h *httpServerAdapter) ShareNote(ctx context.Context, noteID string, req models.ShareRequest) (models.Note, error) {
	var note models.Note
	err := h.doJSON(ctx, resty.MethodPost, notePath(noteID)+"/share", req, &note)
	return note, err
}

// SearchNotes implements [ServerAdapter] via GET /api/notes/search.
func (h *httpServerAdapter) SearchNotes(ctx context.Context, query string, limit int) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", query).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/notes/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out models.NotesResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return out.Notes, nil
}

// GetSettings implements [ServerAdapter] via GET /api/settings.
func (h *httpServerAdapter) GetSettings(ctx context.Context) (models.UserSettings, error) {
	var s models.UserSettings
	err := h.doJSON(ctx, resty.MethodGet, "/api/settings", nil, &s)
	return s, err
}

// UpdateSettings implements [ServerAdapter] via PATCH /api/settings.
func (h *httpServerAdapter) UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.UserSettings, error) {
	var s models.UserSettings
	err := h.doJSON(ctx, resty.MethodPatch, "/api/settings", update, &s)
	return s, err
}

// Transcribe implements [ServerAdapter] via a multipart
// POST /api/transcriptions.
func (h *httpServerAdapter) Transcribe(ctx context.Context, recordingID, fileName string, audio io.Reader) (models.Transcription, error) {
	var t models.Transcription

	resp, err := h.authedRequest(ctx).
		SetFileReader("audio", fileName, audio).
		SetFormData(map[string]string{"recording_id": recordingID}).
		SetResult(&t).
		Post("/api/transcriptions")
	if err != nil {
		return models.Transcription{}, fmt.Errorf("transcribe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transcription{}, err
	}
	return t, nil
}

// ListTranscriptions implements [ServerAdapter] via GET /api/transcriptions.
func (h *httpServerAdapter) ListTranscriptions(ctx context.Context) ([]models.Transcription, error) {
	var resp models.TranscriptionsResponse
	if err := h.doJSON(ctx, resty.MethodGet, "/api/transcriptions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transcriptions, nil
}

// GetTranscription implements [ServerAdapter] via GET /api/transcriptions/{id}.
func (h *httpServerAdapter) GetTranscription(ctx context.Context, id string) (models.Transcription, error) {
	var t models.Transcription
	err := h.doJSON(ctx, resty.MethodGet, "/api/transcriptions/"+url.PathEscape(id), nil, &t)
	return t, err
}

// FinalizeTranscription implements [ServerAdapter] via
// POST /api/transcriptions/{id}/finalize.
func (h *httpServerAdapter) FinalizeTranscription(ctx context.Context, id, text string) (models.Transcription, error) {
	var t models.Transcription
	err := h.doJSON(ctx, resty.MethodPost, "/api/transcriptions/"+url.PathEscape(id)+"/finalize", models.FinalizeRequest{Text: text}, &t)
	return t, err
}

// GetVersion implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (models.VersionResponse, error) {
	var v models.VersionResponse
	err := h.doJSON(ctx, resty.MethodGet, "/api/version", nil, &v)
	return v, err
}

// doJSON sends an authenticated request with an optional JSON body and
// decodes a JSON response into result when it is not nil. Bodies are signed
// when a hash key is configured.
func (h *httpServerAdapter) doJSON(ctx context.Context, method, path string, body, result any) error {
	req := h.authedRequest(ctx)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
		if h.hasher.Enabled() {
			req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result != nil && len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func notePath(noteID string) string {
	return "/api/notes/" + url.PathEscape(noteID)
}
