// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"wrapped not found", fmt.Errorf("get note: %w", store.ErrNoteNotFound), http.StatusNotFound, app.MsgNoteNotFound},
		{"wrong password pair", fmt.Errorf("%w: %w", service.ErrWrongPassword, bcrypt.ErrMismatchedHashAndPassword), http.StatusUnauthorized, app.MsgInvalidEmailPassword},
		{"access denied", service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
		{"quota", service.ErrTranscriptionLimitReached, http.StatusTooManyRequests, app.MsgTranscriptionLimitReached},
		{"no transcriber", service.ErrTranscriberNotConfigured, http.StatusServiceUnavailable, app.MsgTranscriberNotConfigured},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
		{"sql failure", store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestErrorStatusMap_UniqueTargets(t *testing.T) {
	seen := map[error]bool{}
	for _, e := range errorStatusMap {
		assert.False(t, seen[e.target], "duplicate target %v", e.target)
		seen[e.target] = true
		assert.NotEmpty(t, e.message)
	}
}
