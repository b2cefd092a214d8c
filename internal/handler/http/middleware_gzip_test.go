// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZipRequests(t *testing.T) {
	tests := []struct {
		name            string
		body            []byte
		contentEncoding string
		wantStatus      int
		wantBody        string
	}{
		{name: "gzip body is decoded", body: gzipBytes(t, `{"title":"x"}`), contentEncoding: "gzip", wantStatus: http.StatusOK, wantBody: `{"title":"x"}`},
		{name: "plain body passes through", body: []byte(`{"title":"y"}`), wantStatus: http.StatusOK, wantBody: `{"title":"y"}`},
		{name: "invalid gzip", body: []byte("not gzip"), contentEncoding: "gzip", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody, gotEncoding string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, r.Body.Close())
				gotBody, gotEncoding = string(data), r.Header.Get("Content-Encoding")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()
			withGZipRequests(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, gotBody)
				assert.Empty(t, gotEncoding)
			}
		})
	}
}

func TestWrappedReadCloser_CloseOnce(t *testing.T) {
	closed := 0
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { closed++ }}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 1, closed)
}

// ── responses are compressed when the client accepts gzip ──

func TestInit_CompressesResponses(t *testing.T) {
	d := newTestDeps()
	router := newTestRouter(t, d, "")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	var got models.VersionResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	assert.Equal(t, "v1.2.3", got.Version)
}
