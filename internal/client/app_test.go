// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-voice-notes/internal/inbox"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/tui"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	service.ClientAuthService

	stored     *models.Session
	restoreErr error
	logouts    int
}

func (s *stubAuth) Restore(context.Context) (models.Session, bool, error) {
	if s.stored == nil {
		return models.Session{}, false, s.restoreErr
	}
	return *s.stored, true, nil
}

func (s *stubAuth) Logout(context.Context) error {
	s.logouts++
	s.stored = nil
	return nil
}

type stubUI struct {
	login    []error
	loops    []bool
	loopErr  error
	sessions []models.Session
	events   []<-chan inbox.Event
}

func (u *stubUI) LoginFlow(context.Context) (models.Session, error) {
	err := u.login[0]
	u.login = u.login[1:]
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{UserID: 2, Email: "bob@example.com"}, nil
}

func (u *stubUI) MainLoop(_ context.Context, session models.Session, events <-chan inbox.Event) (bool, error) {
	u.sessions = append(u.sessions, session)
	u.events = append(u.events, events)
	if u.loopErr != nil {
		return false, u.loopErr
	}
	logout := u.loops[0]
	u.loops = u.loops[1:]
	return logout, nil
}

type stubInbox struct {
	events chan inbox.Event
	starts int
	stops  int
}

func (s *stubInbox) Start(context.Context)      { s.starts++ }
func (s *stubInbox) Stop()                      { s.stops++ }
func (s *stubInbox) Events() <-chan inbox.Event { return s.events }

func newApp(t *testing.T, auth *stubAuth, ui *stubUI, in AudioInbox) *App {
	t.Helper()
	app, err := NewApp(&service.ClientServices{AuthService: auth}, ui, in, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{AuthService: &stubAuth{}}, nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	stored := models.Session{UserID: 7, Email: "alice@example.com", Token: "jwt"}
	auth := &stubAuth{stored: &stored}
	ui := &stubUI{loops: []bool{false}}

	require.NoError(t, newApp(t, auth, ui, nil).run(context.Background()))

	assert.Equal(t, []models.Session{stored}, ui.sessions)
	assert.Nil(t, ui.events[0])
	assert.Zero(t, auth.logouts)
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	stored := models.Session{UserID: 7, Email: "alice@example.com"}
	auth := &stubAuth{stored: &stored}
	ui := &stubUI{login: []error{nil}, loops: []bool{true, false}}
	in := &stubInbox{events: make(chan inbox.Event)}

	require.NoError(t, newApp(t, auth, ui, in).run(context.Background()))

	require.Len(t, ui.sessions, 2)
	assert.Equal(t, int64(7), ui.sessions[0].UserID)
	assert.Equal(t, int64(2), ui.sessions[1].UserID)
	assert.Equal(t, 1, auth.logouts)
	assert.Equal(t, 2, in.starts)
	assert.GreaterOrEqual(t, in.stops, 2)
	assert.Equal(t, (<-chan inbox.Event)(in.events), ui.events[0])
}

func TestApp_QuitDuringLogin(t *testing.T) {
	ui := &stubUI{login: []error{tui.ErrUserQuit}}

	assert.NoError(t, newApp(t, &stubAuth{}, ui, nil).run(context.Background()))
	assert.Empty(t, ui.sessions)
}

func TestApp_UnreadableSessionFallsBackToLogin(t *testing.T) {
	auth := &stubAuth{restoreErr: errors.New("disk I/O error")}
	ui := &stubUI{login: []error{nil}, loops: []bool{false}}

	require.NoError(t, newApp(t, auth, ui, nil).run(context.Background()))
	require.Len(t, ui.sessions, 1)
	assert.Equal(t, "bob@example.com", ui.sessions[0].Email)
}

func TestApp_Errors(t *testing.T) {
	boom := errors.New("boom")

	// ── login failure ──
	err := newApp(t, &stubAuth{}, &stubUI{login: []error{boom}}, nil).run(context.Background())
	assert.ErrorIs(t, err, boom)

	// ── main loop failure ──
	in := &stubInbox{}
	err = newApp(t, &stubAuth{}, &stubUI{login: []error{nil}, loopErr: boom}, in).run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, in.stops)
}
