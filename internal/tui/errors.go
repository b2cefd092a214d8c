// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/store"
)

// ErrUserQuit is returned by LoginFlow when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrWrongPassword, "Wrong email or password"},
	{store.ErrUserNotFound, "Wrong email or password"},
	{store.ErrEmailAlreadyExists, "This email is already registered"},
	{service.ErrTokenIsExpiredOrInvalid, "Session expired, sign in again"},
	{service.ErrAccessDenied, "You do not have access to this note"},
	{store.ErrNoteNotFound, "Note not found"},
	{service.ErrShareWithOwner, "You already own this note"},
	{service.ErrTranscriptionLimitReached, "Monthly transcription limit reached"},
	{service.ErrTranscriberNotConfigured, "Transcription is not available on this server"},
	{service.ErrTranscriptionFailed, "Transcription failed, try again later"},
	{adapter.ErrPayloadTooLarge, "Audio file is too large"},
	{adapter.ErrUnavailable, "Network is down or the server is unavailable"},
	{adapter.ErrStreamClosed, "Live updates stopped"},
}

// humanizeError turns a service error into a line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return validation.Error()
	}
	for _, e := range errorMessages {
		if errors.Is(err, e.target) {
			return e.message
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
