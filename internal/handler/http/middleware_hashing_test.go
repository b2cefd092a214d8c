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

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
)

const testHashKey = "hash-secret"

func TestWithHashCheck(t *testing.T) {
	body := `{"title":"Groceries"}`
	signer := utils.NewHasher(testHashKey)

	tests := []struct {
		name       string
		key        string
		signature  string
		wantStatus int
	}{
		{name: "valid signature", key: testHashKey, signature: signer.SumHex([]byte(body)), wantStatus: http.StatusOK},
		{name: "wrong signature", key: testHashKey, signature: utils.NewHasher("other").SumHex([]byte(body)), wantStatus: http.StatusBadRequest},
		{name: "not hex", key: testHashKey, signature: "zz", wantStatus: http.StatusBadRequest},
		{name: "missing signature", key: testHashKey, wantStatus: http.StatusBadRequest},
		{name: "checks disabled", key: "", signature: "anything", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{hasher: utils.NewHasher(tt.key), logger: logger.Nop()}

			var gotBody string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, _ := io.ReadAll(r.Body)
				gotBody = string(data)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPatch, "/api/notes/n1", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(utils.HashHeader, tt.signature)
			}
			rec := httptest.NewRecorder()
			h.withHashCheck(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, body, gotBody, "body must be restored for the handler")
			} else {
				assert.Equal(t, app.MsgIntegrityCheckFailed+"\n", rec.Body.String())
			}
		})
	}
}

// ── signed routes only ──

func TestWithHashCheck_Routes(t *testing.T) {
	d := newTestDeps()
	router := newTestRouter(t, d, testHashKey)

	unsigned := serve(router, http.MethodPatch, "/api/settings", `{"theme":"dark"}`, goodToken)
	assert.Equal(t, http.StatusBadRequest, unsigned.Code)

	read := serve(router, http.MethodGet, "/api/settings", "", goodToken)
	assert.Equal(t, http.StatusOK, read.Code)

	d.auth.loginFn = func(_ context.Context, u models.User) (models.User, error) { return u, nil }
	login := serve(router, http.MethodPost, "/api/auth/login", credentials, "")
	assert.Equal(t, http.StatusOK, login.Code)
}
