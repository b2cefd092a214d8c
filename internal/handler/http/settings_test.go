// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings(t *testing.T) {
	d := newTestDeps()
	router := newTestRouter(t, d, "")

	rec := serve(router, http.MethodGet, "/api/settings", "", goodToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme":"light","notifications":true,"language":"en"}`, rec.Body.String())
	assert.Equal(t, alice.UserID, d.settings.gotUserID)
}

func TestUpdateSettings(t *testing.T) {
	d := newTestDeps()
	router := newTestRouter(t, d, "")

	rec := serve(router, http.MethodPatch, "/api/settings", `{"theme":"dark","notifications":false}`, goodToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.UserSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.ThemeDark, got.Theme)
	assert.False(t, got.Notifications)
	assert.Equal(t, "en", got.Language)
	assert.Nil(t, d.settings.gotUpdate.Language)
}

func TestUpdateSettings_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantBody string
	}{
		{name: "invalid json", body: `{"theme":`, wantBody: app.MsgInvalidDataProvided},
		{name: "invalid theme", body: `{"theme":"sepia"}`, err: service.ErrInvalidTheme, wantBody: app.MsgInvalidTheme},
		{name: "invalid language", body: `{"language":"english!"}`, err: service.ErrInvalidLanguage, wantBody: app.MsgInvalidLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			d.settings.err = tt.err
			router := newTestRouter(t, d, "")

			rec := serve(router, http.MethodPatch, "/api/settings", tt.body, goodToken)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantBody+"\n", rec.Body.String())
		})
	}
}
