// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadRequest builds a multipart transcription upload. An empty fileName
// leaves the audio part out.
func uploadRequest(t *testing.T, recordingID, fileName, audio string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("recording_id", recordingID))
	if fileName != "" {
		part, err := mw.CreateFormFile("audio", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(audio))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcriptions", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+goodToken)
	return req
}

// ─────────────────────────────────────────────
// transcribe
// ─────────────────────────────────────────────

func TestTranscribe(t *testing.T) {
	d := newTestDeps()
	d.transcriptions.transcription = models.Transcription{ID: "t1", RecordingID: "rec-1", Text: "buy milk", Status: models.TranscriptionDraft}
	router := newTestRouter(t, d, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "rec-1", "memo.m4a", "RIFF....audio"))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, alice.UserID, d.transcriptions.gotUserID)
	assert.Equal(t, "rec-1", d.transcriptions.gotRecordingID)
	assert.Equal(t, "memo.m4a", d.transcriptions.gotFileName)
	assert.Equal(t, "RIFF....audio", d.transcriptions.gotAudio)

	var got models.Transcription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "buy milk", got.Text)
	assert.Equal(t, models.TranscriptionDraft, got.Status)
}

func TestTranscribe_Errors(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		audio      string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "no audio part", wantStatus: http.StatusBadRequest, wantBody: app.MsgEmptyAudio},
		{name: "limit reached", fileName: "a.wav", audio: "x", err: service.ErrTranscriptionLimitReached, wantStatus: http.StatusTooManyRequests, wantBody: app.MsgTranscriptionLimitReached},
		{name: "no provider", fileName: "a.wav", audio: "x", err: service.ErrTranscriberNotConfigured, wantStatus: http.StatusServiceUnavailable, wantBody: app.MsgTranscriberNotConfigured},
		{name: "provider failure", fileName: "a.wav", audio: "x", err: fmt.Errorf("%w: %w", service.ErrTranscriptionFailed, errors.New("timeout")), wantStatus: http.StatusBadGateway, wantBody: app.MsgTranscriptionFailed},
		{name: "storage failure", fileName: "a.wav", audio: "x", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError, wantBody: app.MsgTranscriptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			d.transcriptions.err = tt.err
			router := newTestRouter(t, d, "")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, uploadRequest(t, "rec-1", tt.fileName, tt.audio))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody+"\n", rec.Body.String())
		})
	}
}

func TestTranscribe_TooLarge(t *testing.T) {
	d := newTestDeps()
	router := NewHandler(d.services(), config.Server{MaxUploadBytes: 64}, "", logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "rec-1", "big.wav", strings.Repeat("a", 4096)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, app.MsgAudioTooLarge+"\n", rec.Body.String())
	assert.Empty(t, d.transcriptions.gotRecordingID)
}

// ─────────────────────────────────────────────
// list / get / finalize
// ─────────────────────────────────────────────

func TestListTranscriptions(t *testing.T) {
	d := newTestDeps()
	d.transcriptions.list = []models.Transcription{{ID: "t1"}, {ID: "t2"}}
	router := newTestRouter(t, d, "")

	rec := serve(router, http.MethodGet, "/api/transcriptions", "", goodToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.TranscriptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Transcriptions, 2)
	assert.Equal(t, "t2", resp.Transcriptions[1].ID)
}

func TestGetTranscription_NotFound(t *testing.T) {
	d := newTestDeps()
	d.transcriptions.err = fmt.Errorf("get transcription t9: %w", store.ErrTranscriptionNotFound)
	router := newTestRouter(t, d, "")

	rec := serve(router, http.MethodGet, "/api/transcriptions/t9", "", goodToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgTranscriptionNotFound+"\n", rec.Body.String())
	assert.Equal(t, "t9", d.transcriptions.gotID)
}

func TestFinalizeTranscription(t *testing.T) {
	d := newTestDeps()
	d.transcriptions.transcription = models.Transcription{ID: "t1", Text: "reviewed", Status: models.TranscriptionFinal}
	router := newTestRouter(t, d, "")

	rec := serve(router, http.MethodPost, "/api/transcriptions/t1/finalize", `{"text":"reviewed"}`, goodToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "t1", d.transcriptions.gotID)
	assert.Equal(t, "reviewed", d.transcriptions.gotText)
}

func TestFinalizeTranscription_EmptyText(t *testing.T) {
	d := newTestDeps()
	d.transcriptions.err = service.ErrEmptyTranscriptionText
	router := newTestRouter(t, d, "")

	rec := serve(router, http.MethodPost, "/api/transcriptions/t1/finalize", `{"text":"  "}`, goodToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgEmptyTranscriptionText+"\n", rec.Body.String())
}
