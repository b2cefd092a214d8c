// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-voice-notes/internal/inbox"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/tui"
	"github.com/MKhiriev/go-voice-notes/models"
)

// App ties the sign-in flow, the audio inbox and the note screens together.
type App struct {
	auth   service.ClientAuthService
	ui     UI
	inbox  AudioInbox
	logger *logger.Logger
}

// NewApp builds the client application. in may be nil when the audio inbox
// is disabled.
func NewApp(services *service.ClientServices, ui UI, in AudioInbox, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("client app: nil auth service")
	}
	if ui == nil {
		return nil, errors.New("client app: nil ui")
	}
	return &App{auth: services.AuthService, ui: ui, inbox: in, logger: logger}, nil
}

// Run blocks until the user quits or the process receives SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.stopInbox()

	for {
		session, err := a.signIn(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		events := a.startInbox(ctx)
		logout, err := a.ui.MainLoop(ctx, session, events)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.stopInbox()
		if err = a.auth.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Int64("user_id", session.UserID).Msg("signed out")
	}
}

// signIn reuses the stored session or asks the user to sign in.
func (a *App) signIn(ctx context.Context) (models.Session, error) {
	session, ok, err := a.auth.Restore(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("stored session is unreadable, asking to sign in")
	}
	if ok {
		a.logger.Info().Int64("user_id", session.UserID).Msg("session restored")
		return session, nil
	}
	return a.ui.LoginFlow(ctx)
}

func (a *App) startInbox(ctx context.Context) <-chan inbox.Event {
	if a.inbox == nil {
		return nil
	}
	a.inbox.Start(ctx)
	return a.inbox.Events()
}

func (a *App) stopInbox() {
	if a.inbox != nil {
		a.inbox.Stop()
	}
}
