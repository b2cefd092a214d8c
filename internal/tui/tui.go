// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/internal/inbox"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/search"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	engine    *search.Engine
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, engine *search.Engine, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, engine: engine, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow shows the sign-in pages until the user signs in or registers.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("signed in")
	return result.session, nil
}

// MainLoop runs the note screens for session. events may be nil when the
// audio inbox is disabled.
func (t *TUI) MainLoop(ctx context.Context, session models.Session, events <-chan inbox.Event) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.engine, session, t.buildInfo, events)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	result, ok := finalModel.(mainLoopModel)
	if ok {
		result.close()
	} else {
		model.close()
	}
	if runErr != nil {
		return false, runErr
	}
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
