// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-voice-notes/internal/index"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
)

// noteStorage is the default implementation of [NoteStorage].
//
// It delegates all relational work to a [NoteRepository] and mirrors every
// successful write into an [index.NoteIndex]. An index failure never fails
// the write: the repository stays the owner of record and the index is
// repaired by the next [noteStorage.Reindex].
type noteStorage struct {
	NoteRepository

	index  index.NoteIndex
	logger *logger.Logger
}

// NewNoteStorage wires repository and idx together.
func NewNoteStorage(repository NoteRepository, idx index.NoteIndex, logger *logger.Logger) NoteStorage {
	logger.Debug().Msg("creating note storage")
	return &noteStorage{
		NoteRepository: repository,
		index:          idx,
		logger:         logger,
	}
}

func (s *noteStorage) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	created, err := s.NoteRepository.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, err
	}
	s.indexNote(ctx, created)
	return created, nil
}

func (s *noteStorage) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	updated, err := s.NoteRepository.UpdateNote(ctx, noteID, update)
	if err != nil {
		return models.Note{}, err
	}
	s.indexNote(ctx, updated)
	return updated, nil
}

func (s *noteStorage) DeleteNote(ctx context.Context, noteID string) error {
	if err := s.NoteRepository.DeleteNote(ctx, noteID); err != nil {
		return err
	}
	if err := s.index.Remove(noteID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("note_id", noteID).Msg("failed to remove note from search index")
	}
	return nil
}

// Search ranks the notes of userID against query and returns them in rank
// order.
func (s *noteStorage) Search(ctx context.Context, userID int64, query string, limit int) ([]models.Note, error) {
	hits, err := s.index.Search(ctx, userID, query, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteStorage.Search").Msg("search index query failed")
		return nil, fmt.Errorf("search index: %w", err)
	}
	if len(hits) == 0 {
		return []models.Note{}, nil
	}

	notes, err := s.ListUserNotes(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(notes, func(n models.Note) string { return n.ID })

	// a hit may outlive its note until the index catches up
	return lo.FilterMap(hits, func(h index.Hit, _ int) (models.Note, bool) {
		n, ok := byID[h.NoteID]
		return n, ok
	}), nil
}

func (s *noteStorage) Reindex(ctx context.Context) error {
	notes, err := s.ListAllNotes(ctx)
	if err != nil {
		return err
	}
	if err = s.index.IndexAll(notes); err != nil {
		return fmt.Errorf("search index: %w", err)
	}
	s.logger.Info().Int("notes", len(notes)).Msg("search index rebuilt")
	return nil
}

func (s *noteStorage) indexNote(ctx context.Context, note models.Note) {
	if err := s.index.Index(note); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("note_id", note.ID).Msg("failed to index note")
	}
}
