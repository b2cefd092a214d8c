// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first match wins. Wrapped pairs
// such as ErrWrongPassword plus a bcrypt error resolve to the first listed
// sentinel.
var errorStatusMap = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{store.ErrUserNotFound, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},

	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},
	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
	{service.ErrEmptyNoteID, http.StatusBadRequest, app.MsgEmptyNoteID},
	{service.ErrInvalidNoteType, http.StatusBadRequest, app.MsgInvalidNoteType},
	{service.ErrEmptyUpdate, http.StatusBadRequest, app.MsgEmptyUpdate},
	{service.ErrEmptyShareEmail, http.StatusBadRequest, app.MsgEmptyShareEmail},
	{service.ErrShareWithOwner, http.StatusBadRequest, app.MsgShareWithOwner},
	{service.ErrEmptySearchQuery, http.StatusBadRequest, app.MsgEmptySearchQuery},

	{service.ErrInvalidTheme, http.StatusBadRequest, app.MsgInvalidTheme},
	{service.ErrInvalidLanguage, http.StatusBadRequest, app.MsgInvalidLanguage},

	{store.ErrTranscriptionNotFound, http.StatusNotFound, app.MsgTranscriptionNotFound},
	{service.ErrEmptyAudio, http.StatusBadRequest, app.MsgEmptyAudio},
	{service.ErrEmptyRecordingID, http.StatusBadRequest, app.MsgEmptyRecordingID},
	{service.ErrEmptyTranscriptionText, http.StatusBadRequest, app.MsgEmptyTranscriptionText},
	{service.ErrTranscriptionLimitReached, http.StatusTooManyRequests, app.MsgTranscriptionLimitReached},
	{service.ErrTranscriberNotConfigured, http.StatusServiceUnavailable, app.MsgTranscriberNotConfigured},
	{service.ErrTranscriptionFailed, http.StatusBadGateway, app.MsgTranscriptionFailed},
}

// statusFromError returns the status code and response message for err.
// Unknown errors are internal server errors.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status. fallback replaces
// the message of unmapped errors when it is not empty.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, msg := statusFromError(err)
	if status == http.StatusInternalServerError && fallback != "" {
		msg = fallback
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	http.Error(w, msg, status)
}
