// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	cfg := config.Server{MaxUploadBytes: 42, RequestTimeout: time.Second}

	h := NewHandler(svc, cfg, "key", logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, int64(42), h.maxUploadBytes)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.True(t, h.hasher.Enabled())

	assert.False(t, NewHandler(svc, cfg, "", logger.Nop()).hasher.Enabled())
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/version", "", http.StatusOK},
		{http.MethodGet, "/api/notes", "", http.StatusOK},
		{http.MethodGet, "/api/notes/", "", http.StatusOK},
		{http.MethodPost, "/api/notes", `{"title":"t","type":"note"}`, http.StatusCreated},
		{http.MethodGet, "/api/notes/shared", "", http.StatusOK},
		{http.MethodGet, "/api/notes/search?q=milk", "", http.StatusOK},
		{http.MethodGet, "/api/notes/n1", "", http.StatusOK},
		{http.MethodPatch, "/api/notes/n1", `{"title":"x"}`, http.StatusOK},
		{http.MethodDelete, "/api/notes/n1", "", http.StatusNoContent},
		{http.MethodPost, "/api/notes/n1/share", `{"email":"bob@example.com"}`, http.StatusOK},
		{http.MethodGet, "/api/settings", "", http.StatusOK},
		{http.MethodPatch, "/api/settings", `{"theme":"dark"}`, http.StatusOK},
		{http.MethodGet, "/api/transcriptions", "", http.StatusOK},
		{http.MethodGet, "/api/transcriptions/t1", "", http.StatusOK},
		{http.MethodPost, "/api/transcriptions/t1/finalize", `{"text":"done"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			router := newTestRouter(t, newTestDeps(), "")

			rec := serve(router, tt.method, tt.path, tt.body, goodToken)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestInit_AuthenticatedRoutesRejectAnonymous(t *testing.T) {
	paths := []string{"/api/notes", "/api/notes/n1", "/api/notes/shared", "/api/settings", "/api/transcriptions"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			d := newTestDeps()
			router := newTestRouter(t, d, "")

			rec := serve(router, http.MethodGet, path, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Zero(t, d.notes.calls)
		})
	}
}

// ── unsupported methods answer 404 ──

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/version"},
		{http.MethodDelete, "/api/auth/login"},
		{http.MethodPut, "/api/notes/n1"},
		{http.MethodGet, "/api/notes/n1/share"},
		{http.MethodDelete, "/api/settings"},
		{http.MethodPut, "/api/notes"},
		{http.MethodPatch, "/api/transcriptions/t1"},
		{http.MethodPut, "/api/notes/n1/share"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			router := newTestRouter(t, newTestDeps(), "")

			rec := serve(router, tt.method, tt.path, "", goodToken)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	d := newTestDeps()
	router := newTestRouter(t, d, "")

	rec := serve(router, http.MethodGet, "/api/version", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, d.info.version, got)
}
