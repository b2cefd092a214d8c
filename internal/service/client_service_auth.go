// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/models"
)

type authListener func(session models.Session, signedIn bool)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions store.LocalSessionRepository

	mu        sync.Mutex
	current   *models.Session
	listeners map[int]authListener
	nextID    int

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions store.LocalSessionRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		sessions:  sessions,
		listeners: make(map[int]authListener),
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, email, password string) (models.Session, error) {
	return a.signIn(ctx, email, password, a.adapter.Register)
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	return a.signIn(ctx, email, password, a.adapter.Login)
}

func (a *clientAuthService) signIn(ctx context.Context, email, password string, call func(context.Context, models.User) (models.User, error)) (models.Session, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return models.Session{}, &ValidationError{Field: "email", Reason: "is empty"}
	}
	if strings.TrimSpace(password) == "" {
		return models.Session{}, &ValidationError{Field: "password", Reason: "is empty"}
	}

	user, err := call(ctx, models.User{Email: email, Password: password})
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{UserID: user.UserID, Email: user.Email, Token: a.adapter.Token()}
	if session.Email == "" {
		session.Email = email
	}

	if err = a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.signIn").Msg("persisting session failed")
	}

	a.setCurrent(&session)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	a.setCurrent(nil)

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, bool, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("load session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	a.setCurrent(&session)
	return session, true, nil
}

func (a *clientAuthService) CurrentUser() (models.Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return models.Session{}, false
	}
	return *a.current, true
}

func (a *clientAuthService) OnAuthStateChanged(fn func(session models.Session, signedIn bool)) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	session, signedIn := a.snapshotLocked()
	a.mu.Unlock()

	fn(session, signedIn)

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.listeners, id)
			a.mu.Unlock()
		})
	}
}

func (a *clientAuthService) setCurrent(session *models.Session) {
	a.mu.Lock()
	a.current = session
	current, signedIn := a.snapshotLocked()
	listeners := make([]authListener, 0, len(a.listeners))
	for _, l := range a.listeners {
		listeners = append(listeners, l)
	}
	a.mu.Unlock()

	for _, l := range listeners {
		l(current, signedIn)
	}
}

func (a *clientAuthService) snapshotLocked() (models.Session, bool) {
	if a.current == nil {
		return models.Session{}, false
	}
	return *a.current, true
}
