// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/index"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
)

// Repositories groups every server-side store consumed by the service layer.
type Repositories struct {
	UserRepository          UserRepository
	NoteStorage             NoteStorage
	TranscriptionRepository TranscriptionRepository
	// AudioFileStorage is nil when the audio archive is disabled.
	AudioFileStorage AudioFileStorage

	db    *DB
	index index.NoteIndex
}

// NewRepositories connects to PostgreSQL, applies migrations, and builds the
// search index from the stored notes.
func NewRepositories(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	idx, err := index.NewMemIndex()
	if err != nil {
		db.Close()
		return nil, err
	}

	notes := NewNoteStorage(NewNoteRepository(db, logger), idx, logger)
	if err = notes.Reindex(ctx); err != nil {
		db.Close()
		idx.Close()
		return nil, fmt.Errorf("build search index: %w", err)
	}

	return &Repositories{
		UserRepository:          NewUserRepository(db, logger),
		NoteStorage:             notes,
		TranscriptionRepository: NewTranscriptionRepository(db, logger),
		AudioFileStorage:        NewAudioFileStorage(cfg.Files.AudioDir),
		db:                      db,
		index:                   idx,
	}, nil
}

// Close releases the search index and the database pool.
func (r *Repositories) Close() error {
	if r.index != nil {
		r.index.Close()
	}
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
