// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-voice-notes/internal/inbox"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/models"
)

// NavigateTo switches the sign-in flow to another page.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult finishes the sign-in flow when Err is nil.
type AuthResult struct {
	Session  models.Session
	Register bool
	Err      error
}

type listSubscribedMsg struct {
	sub *service.Subscription[[]models.Note]
	err error
}

type noteSubscribedMsg struct {
	streamID int
	sub      *service.Subscription[*models.Note]
	err      error
}

type cachedNotesMsg struct {
	notes []models.Note
}

type noteCreatedMsg struct {
	id  string
	err error
}

type noteDeletedMsg struct {
	err error
}

type noteSharedMsg struct {
	email string
	err   error
}

type transcribedMsg struct {
	transcription models.Transcription
	err           error
}

type transcriptSavedMsg struct {
	noteID string
	err    error
}

type settingsLoadedMsg struct {
	settings models.UserSettings
	err      error
}

type settingsSavedMsg struct {
	settings models.UserSettings
	err      error
}

type serverVersionMsg struct {
	version models.VersionResponse
	err     error
}

type copiedMsg struct {
	err error
}

type inboxEventMsg struct {
	event inbox.Event
}
