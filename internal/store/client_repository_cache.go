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

const (
	notesCacheTable    = "notes_cache"
	settingsCacheTable = "settings_cache"
)

// localCache stores one JSON payload per user in table.
type localCache[T any] struct {
	db     *DB
	table  string
	logger *logger.Logger
	now    func() time.Time
}

func (c *localCache[T]) save(ctx context.Context, userID int64, v T) error {
	query, args, err := buildUpsertCacheQuery(c.db.builder, c.table, userID, jsonColumn[T]{V: v, Valid: true}, c.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("table", c.table).Int64("user_id", userID).Msg("failed to write local cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (c *localCache[T]) load(ctx context.Context, userID int64) (T, bool, error) {
	var zero T

	query, args, err := buildSelectCacheQuery(c.db.builder, c.table, userID)
	if err != nil {
		return zero, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload jsonColumn[T]
	err = c.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		c.logger.Err(err).Str("table", c.table).Int64("user_id", userID).Msg("failed to read local cache")
		return zero, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return payload.V, payload.Valid, nil
}

func (c *localCache[T]) clear(ctx context.Context, userID int64) error {
	query, args, err := buildDeleteCacheQuery(c.db.builder, c.table, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type localNotesCache struct {
	cache localCache[[]models.Note]
}

// NewLocalNotesCache constructs a [LocalNotesCache] backed by db.
func NewLocalNotesCache(db *DB, logger *logger.Logger) LocalNotesCache {
	return &localNotesCache{cache: localCache[[]models.Note]{db: db, table: notesCacheTable, logger: logger, now: time.Now}}
}

func (l *localNotesCache) SaveNotes(ctx context.Context, userID int64, notes []models.Note) error {
	return l.cache.save(ctx, userID, notes)
}

func (l *localNotesCache) LoadNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, _, err := l.cache.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (l *localNotesCache) ClearNotes(ctx context.Context, userID int64) error {
	return l.cache.clear(ctx, userID)
}

type localSettingsCache struct {
	cache localCache[models.UserSettings]
}

// NewLocalSettingsCache constructs a [LocalSettingsCache] backed by db.
func NewLocalSettingsCache(db *DB, logger *logger.Logger) LocalSettingsCache {
	return &localSettingsCache{cache: localCache[models.UserSettings]{db: db, table: settingsCacheTable, logger: logger, now: time.Now}}
}

func (l *localSettingsCache) SaveSettings(ctx context.Context, userID int64, settings models.UserSettings) error {
	return l.cache.save(ctx, userID, settings)
}

func (l *localSettingsCache) LoadSettings(ctx context.Context, userID int64) (models.UserSettings, bool, error) {
	return l.cache.load(ctx, userID)
}
