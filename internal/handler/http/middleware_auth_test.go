// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def", wantToken: "abc.def"},
		{name: "lower case scheme", header: "bearer abc.def", wantToken: "abc.def"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer  ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Middleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCaller bool
	}{
		{name: "valid token", header: "Bearer " + goodToken, wantStatus: http.StatusOK, wantCaller: true},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer stale.token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			h := &Handler{services: d.services(), logger: logger.Nop()}

			var caller models.Caller
			var callerErr error
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				caller, callerErr = callerFromRequest(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantCaller {
				assert.Equal(t, app.MsgTokenIsExpiredOrInvalid+"\n", rec.Body.String())
				return
			}
			require.NoError(t, callerErr)
			assert.Equal(t, alice, caller)
		})
	}
}

func TestCallerFromRequest_Missing(t *testing.T) {
	_, err := callerFromRequest(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, err, errNoCaller)
}
