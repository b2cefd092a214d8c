// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
)

// localSessionRepository keeps at most one session row in the client SQLite
// database.
type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] backed by db.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{db: db, logger: logger, now: time.Now}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	query, args, err := buildUpsertSessionQuery(l.db.builder, session, l.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.db.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	query, args, err := buildSelectSessionQuery(l.db.builder)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = l.db.QueryRowContext(ctx, query, args...).Scan(&s.UserID, &s.Email, &s.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		l.logger.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return s, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery(l.db.builder)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.db.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).Str("func", "*localSessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
