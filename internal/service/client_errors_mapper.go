// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/store"
)

// messageErrors maps the response messages written by the server back to
// the sentinel the server started from.
var messageErrors = map[string]error{
	app.MsgInvalidDataProvided:     ErrInvalidDataProvided,
	app.MsgInvalidEmailPassword:    ErrWrongPassword,
	app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
	app.MsgAccessDenied:            ErrAccessDenied,
	app.MsgEmailAlreadyExists:      store.ErrEmailAlreadyExists,

	app.MsgNoteNotFound:     store.ErrNoteNotFound,
	app.MsgEmptyNoteID:      ErrEmptyNoteID,
	app.MsgInvalidNoteType:  ErrInvalidNoteType,
	app.MsgEmptyUpdate:      ErrEmptyUpdate,
	app.MsgEmptyShareEmail:  ErrEmptyShareEmail,
	app.MsgShareWithOwner:   ErrShareWithOwner,
	app.MsgEmptySearchQuery: ErrEmptySearchQuery,

	app.MsgInvalidTheme:    ErrInvalidTheme,
	app.MsgInvalidLanguage: ErrInvalidLanguage,

	app.MsgTranscriptionNotFound:     store.ErrTranscriptionNotFound,
	app.MsgEmptyAudio:                ErrEmptyAudio,
	app.MsgEmptyRecordingID:          ErrEmptyRecordingID,
	app.MsgEmptyTranscriptionText:    ErrEmptyTranscriptionText,
	app.MsgTranscriptionLimitReached: ErrTranscriptionLimitReached,
	app.MsgTranscriberNotConfigured:  ErrTranscriberNotConfigured,
}

// mapAdapterError translates the adapter's transport error into a service
// business error. The result matches both the business sentinel and the
// transport sentinel with errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized) && !isKnownMessage(err):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	case errors.Is(err, adapter.ErrForbidden) && !isKnownMessage(err):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}

	if sentinel, ok := messageErrors[extractBody(err)]; ok && isTransportError(err) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

// transportErrors are the adapter sentinels that carry a server message.
var transportErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrForbidden,
	adapter.ErrNotFound,
	adapter.ErrConflict,
	adapter.ErrPayloadTooLarge,
	adapter.ErrTooManyRequests,
	adapter.ErrInternalServerError,
	adapter.ErrBadGateway,
	adapter.ErrUnavailable,
}

func isTransportError(err error) bool {
	return lo.ContainsBy(transportErrors, func(target error) bool { return errors.Is(err, target) })
}

func isKnownMessage(err error) bool {
	_, ok := messageErrors[extractBody(err)]
	return ok
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
