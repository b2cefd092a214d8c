// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/internal/inbox"
	"github.com/MKhiriev/go-voice-notes/models"
)

// Client is a runnable client application.
type Client interface {
	// Run blocks until the user quits.
	Run() error
}

var _ Client = (*App)(nil)

// UI is the interactive part of the client.
type UI interface {
	// LoginFlow returns the session of the user who signed in or registered.
	LoginFlow(ctx context.Context) (models.Session, error)

	// MainLoop shows the notes of session until the user quits or signs out.
	// events may be nil.
	MainLoop(ctx context.Context, session models.Session, events <-chan inbox.Event) (logout bool, err error)
}

// AudioInbox turns recordings dropped into a directory into notes.
type AudioInbox interface {
	Start(ctx context.Context)
	Stop()
	Events() <-chan inbox.Event
}
