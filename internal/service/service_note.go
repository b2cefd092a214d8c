// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/samber/lo"
)

type idGenerator interface {
	Generate() string
}

// noteService enforces ownership and share grants. The server clock is the
// only source of note timestamps.
type noteService struct {
	notes    store.NoteStorage
	notifier ChangeNotifier
	ids      idGenerator
	now      func() time.Time

	logger *logger.Logger
}

// NewNoteService returns a NoteService backed by notes. Every committed
// write is reported to notifier.
func NewNoteService(notes store.NoteStorage, notifier ChangeNotifier, logger *logger.Logger) NoteService {
	return &noteService{
		notes:    notes,
		notifier: notifier,
		ids:      utils.NewUUIDGenerator(),
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, caller models.Caller, draft models.NoteDraft) (models.Note, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	note := models.Note{
		ID:              s.ids.Generate(),
		UserID:          caller.UserID,
		Title:           draft.Title,
		Content:         draft.Content,
		Type:            draft.Type,
		Tags:            normalizeTags(draft.Tags),
		CreatedAt:       now,
		UpdatedAt:       now,
		TranscriptionID: draft.TranscriptionID,
		SharedWith:      []models.ShareGrant{},
	}

	created, err := s.notes.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "noteService.CreateNote").Int64("user_id", caller.UserID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	s.notifier.NoteChanged(created.UserID, created.ID)
	return created, nil
}

func (s *noteService) GetNote(ctx context.Context, caller models.Caller, noteID string) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %s: %w", noteID, err)
	}
	if !CanRead(note, caller) {
		return models.Note{}, ErrAccessDenied
	}
	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, caller models.Caller) ([]models.Note, error) {
	notes, err := s.notes.ListUserNotes(ctx, caller.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.ListNotes").Int64("user_id", caller.UserID).Msg("listing notes failed")
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) ListSharedNotes(ctx context.Context, caller models.Caller) ([]models.Note, error) {
	if caller.Email == "" {
		return []models.Note{}, nil
	}

	notes, err := s.notes.ListSharedNotes(ctx, NormalizeEmail(caller.Email))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.ListSharedNotes").Str("email", caller.Email).Msg("listing shared notes failed")
		return nil, fmt.Errorf("list shared notes: %w", err)
	}
	return notes, nil
}

// UpdateNote applies update when caller owns the note or holds an edit
// grant. Only the owner may change the shared flag.
func (s *noteService) UpdateNote(ctx context.Context, caller models.Caller, noteID string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %s: %w", noteID, err)
	}
	if !CanEdit(note, caller) || (update.IsShared != nil && note.UserID != caller.UserID) {
		log.Warn().Str("note_id", noteID).Int64("user_id", caller.UserID).Msg("note update denied")
		return models.Note{}, ErrAccessDenied
	}

	if update.Tags != nil {
		tags := normalizeTags(*update.Tags)
		update.Tags = &tags
	}
	update.UpdatedAt = laterOf(s.now(), note.CreatedAt)

	updated, err := s.notes.UpdateNote(ctx, noteID, update)
	if err != nil {
		log.Err(err).Str("func", "noteService.UpdateNote").Str("note_id", noteID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	s.notifier.NoteChanged(updated.UserID, updated.ID)
	return updated, nil
}

// DeleteNote removes a note owned by caller. Deleting it twice reports
// store.ErrNoteNotFound.
func (s *noteService) DeleteNote(ctx context.Context, caller models.Caller, noteID string) error {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return fmt.Errorf("get note %s: %w", noteID, err)
	}
	if note.UserID != caller.UserID {
		return ErrAccessDenied
	}

	if err = s.notes.DeleteNote(ctx, noteID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.DeleteNote").Str("note_id", noteID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	s.notifier.NoteChanged(note.UserID, noteID)
	return nil
}

// ShareNote adds one grant to a note owned by caller. Repeating the same
// (email, canEdit) pair keeps a single grant.
func (s *noteService) ShareNote(ctx context.Context, caller models.Caller, noteID string, req models.ShareRequest) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %s: %w", noteID, err)
	}
	if note.UserID != caller.UserID {
		return models.Note{}, ErrAccessDenied
	}

	email := NormalizeEmail(req.Email)
	if email == NormalizeEmail(caller.Email) {
		return models.Note{}, ErrShareWithOwner
	}

	grant := models.ShareGrant{Email: email, CanEdit: req.CanEdit, SharedAt: laterOf(s.now(), note.CreatedAt)}
	shared, err := s.notes.AddShare(ctx, noteID, grant)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.ShareNote").Str("note_id", noteID).Msg("note sharing failed")
		return models.Note{}, fmt.Errorf("note sharing failed: %w", err)
	}

	s.notifier.NoteChanged(shared.UserID, shared.ID)
	return shared, nil
}

func (s *noteService) SearchNotes(ctx context.Context, caller models.Caller, query string, limit int) ([]models.Note, error) {
	notes, err := s.notes.Search(ctx, caller.UserID, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}

// CanRead reports whether caller owns note or holds any grant on it.
func CanRead(note models.Note, caller models.Caller) bool {
	if note.UserID == caller.UserID {
		return true
	}
	_, ok := note.SharedWithEmail(NormalizeEmail(caller.Email))
	return ok && caller.Email != ""
}

// CanEdit reports whether caller owns note or holds an edit grant on it.
// A recipient may hold a read grant and an edit grant at the same time.
func CanEdit(note models.Note, caller models.Caller) bool {
	if note.UserID == caller.UserID {
		return true
	}
	email := NormalizeEmail(caller.Email)
	return email != "" && lo.ContainsBy(note.SharedWith, func(g models.ShareGrant) bool {
		return g.Email == email && g.CanEdit
	})
}

// normalizeTags trims labels and drops empty and repeated ones.
func normalizeTags(tags []string) []string {
	trimmed := lo.FilterMap(tags, func(t string, _ int) (string, bool) {
		t = strings.TrimSpace(t)
		return t, t != ""
	})
	return lo.Uniq(trimmed)
}

func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
