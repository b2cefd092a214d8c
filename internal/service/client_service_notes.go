// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/samber/lo"
)

type clientNotesService struct {
	documents DocumentStore
	// cache is nil when nothing is persisted locally.
	cache store.LocalNotesCache
	now   func() time.Time

	logger *logger.Logger
}

// NewClientNotesService creates the live note set on top of documents.
func NewClientNotesService(documents DocumentStore, cache store.LocalNotesCache, logger *logger.Logger) ClientNotesService {
	return &clientNotesService{
		documents: documents,
		cache:     cache,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (s *clientNotesService) SubscribeUserNotes(ctx context.Context, userID int64, onSnapshot func([]models.Note), onError func(error)) (*Subscription[[]models.Note], error) {
	if userID <= 0 {
		return nil, &ValidationError{Field: "userID", Reason: "must be positive"}
	}
	if onSnapshot == nil {
		return nil, &ValidationError{Field: "onSnapshot", Reason: "is nil"}
	}

	ctx, cancel := context.WithCancel(ctx)
	ch, err := s.documents.WatchUserNotes(ctx, userID)
	if err != nil {
		cancel()
		return nil, storeError("watch user notes", err)
	}

	sub := newSubscription(cancel, []models.Note{}, models.CloneNotes)
	go func() {
		defer close(sub.done)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-ch:
				if !ok {
					if ctx.Err() == nil {
						s.fail(sub.deliver, onError, "watch user notes", adapter.ErrStreamClosed)
					}
					return
				}
				if snap.Err != nil {
					s.fail(sub.deliver, onError, "watch user notes", snap.Err)
					return
				}

				notes := orderNotes(snap.Notes)
				sub.setLatest(notes)
				s.saveCache(ctx, userID, notes)
				sub.deliver(func() { onSnapshot(models.CloneNotes(notes)) })
			}
		}
	}()

	return sub, nil
}

func (s *clientNotesService) SubscribeNote(ctx context.Context, noteID string, onSnapshot func(*models.Note), onError func(error)) (*Subscription[*models.Note], error) {
	if strings.TrimSpace(noteID) == "" {
		return nil, &ValidationError{Field: "noteID", Reason: "is empty"}
	}
	if onSnapshot == nil {
		return nil, &ValidationError{Field: "onSnapshot", Reason: "is nil"}
	}

	ctx, cancel := context.WithCancel(ctx)
	ch, err := s.documents.WatchNote(ctx, noteID)
	if err != nil {
		cancel()
		return nil, storeError("watch note", err)
	}

	sub := newSubscription(cancel, nil, cloneNotePtr)
	go func() {
		defer close(sub.done)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-ch:
				if !ok {
					if ctx.Err() == nil {
						s.fail(sub.deliver, onError, "watch note", adapter.ErrStreamClosed)
					}
					return
				}
				if snap.Err != nil {
					s.fail(sub.deliver, onError, "watch note", snap.Err)
					return
				}

				note := cloneNotePtr(snap.Note)
				sub.setLatest(note)
				sub.deliver(func() { onSnapshot(cloneNotePtr(note)) })
			}
		}
	}()

	return sub, nil
}

func (s *clientNotesService) fail(deliver func(func()) bool, onError func(error), op string, err error) {
	serr := storeError(op, err)
	s.logger.Warn().Err(serr).Msg("subscription ended")
	if onError != nil {
		deliver(func() { onError(serr) })
	}
}

// Create stamps both timestamps with the local clock. The server keeps its
// own clock authoritative.
func (s *clientNotesService) Create(ctx context.Context, draft models.NoteDraft) (string, error) {
	if draft.Type == "" {
		draft.Type = models.NoteTypeNote
	}
	if !draft.Type.Valid() {
		return "", &ValidationError{Field: "type", Reason: "unsupported note type " + string(draft.Type)}
	}

	now := s.now()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	note, err := s.documents.AddNote(ctx, draft)
	if err != nil {
		return "", storeError("create note", err)
	}
	return note.ID, nil
}

func (s *clientNotesService) Update(ctx context.Context, noteID string, update models.NoteUpdate) error {
	if strings.TrimSpace(noteID) == "" {
		return &ValidationError{Field: "noteID", Reason: "is empty"}
	}
	if update.IsEmpty() {
		return &ValidationError{Field: "update", Reason: "carries no changes"}
	}
	if update.Type != nil && !update.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "unsupported note type " + string(*update.Type)}
	}

	update.UpdatedAt = s.now()
	if err := s.documents.UpdateNote(ctx, noteID, update); err != nil {
		return storeError("update note", err)
	}
	return nil
}

// Delete is not idempotent: deleting a missing note is a store error.
func (s *clientNotesService) Delete(ctx context.Context, noteID string) error {
	if strings.TrimSpace(noteID) == "" {
		return &ValidationError{Field: "noteID", Reason: "is empty"}
	}
	if err := s.documents.DeleteNote(ctx, noteID); err != nil {
		return storeError("delete note", err)
	}
	return nil
}

func (s *clientNotesService) Share(ctx context.Context, noteID, email string, canEdit bool) error {
	if strings.TrimSpace(noteID) == "" {
		return &ValidationError{Field: "noteID", Reason: "is empty"}
	}
	email = NormalizeEmail(email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "is empty"}
	}

	grant := models.ShareGrant{Email: email, CanEdit: canEdit, SharedAt: s.now()}
	if err := s.documents.ShareNote(ctx, noteID, grant); err != nil {
		return storeError("share note", err)
	}
	return nil
}

func (s *clientNotesService) CachedUserNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	if s.cache == nil {
		return []models.Note{}, nil
	}
	notes, err := s.cache.LoadNotes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return orderNotes(notes), nil
}

func (s *clientNotesService) saveCache(ctx context.Context, userID int64, notes []models.Note) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SaveNotes(ctx, userID, notes); err != nil && ctx.Err() == nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("caching notes snapshot failed")
	}
}

// orderNotes returns a private copy with unique IDs, newest first. Notes
// created at the same instant keep the store's order.
func orderNotes(notes []models.Note) []models.Note {
	out := models.CloneNotes(lo.UniqBy(notes, func(n models.Note) string { return n.ID }))
	slices.SortStableFunc(out, func(a, b models.Note) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func cloneNotePtr(n *models.Note) *models.Note {
	if n == nil {
		return nil
	}
	c := n.Clone()
	return &c
}
