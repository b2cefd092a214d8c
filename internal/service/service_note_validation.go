// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-voice-notes/models"
)

// NoteValidationService rejects malformed input before it reaches the
// wrapped NoteService.
type NoteValidationService struct {
	inner NoteService
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, caller models.Caller, draft models.NoteDraft) (models.Note, error) {
	if caller.UserID <= 0 {
		return models.Note{}, ErrInvalidDataProvided
	}
	if draft.Type == "" {
		draft.Type = models.NoteTypeNote
	}
	if !draft.Type.Valid() {
		return models.Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteType, draft.Type)
	}

	return v.inner.CreateNote(ctx, caller, draft)
}

func (v *NoteValidationService) GetNote(ctx context.Context, caller models.Caller, noteID string) (models.Note, error) {
	if noteID == "" {
		return models.Note{}, ErrEmptyNoteID
	}
	return v.inner.GetNote(ctx, caller, noteID)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, caller models.Caller) ([]models.Note, error) {
	return v.inner.ListNotes(ctx, caller)
}

func (v *NoteValidationService) ListSharedNotes(ctx context.Context, caller models.Caller) ([]models.Note, error) {
	return v.inner.ListSharedNotes(ctx, caller)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, caller models.Caller, noteID string, update models.NoteUpdate) (models.Note, error) {
	if noteID == "" {
		return models.Note{}, ErrEmptyNoteID
	}
	if update.IsEmpty() {
		return models.Note{}, ErrEmptyUpdate
	}
	if update.Type != nil && !update.Type.Valid() {
		return models.Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteType, *update.Type)
	}

	return v.inner.UpdateNote(ctx, caller, noteID, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, caller models.Caller, noteID string) error {
	if noteID == "" {
		return ErrEmptyNoteID
	}
	return v.inner.DeleteNote(ctx, caller, noteID)
}

func (v *NoteValidationService) ShareNote(ctx context.Context, caller models.Caller, noteID string, req models.ShareRequest) (models.Note, error) {
	if noteID == "" {
		return models.Note{}, ErrEmptyNoteID
	}
	if strings.TrimSpace(req.Email) == "" {
		return models.Note{}, ErrEmptyShareEmail
	}
	return v.inner.ShareNote(ctx, caller, noteID, req)
}

func (v *NoteValidationService) SearchNotes(ctx context.Context, caller models.Caller, query string, limit int) ([]models.Note, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptySearchQuery
	}
	return v.inner.SearchNotes(ctx, caller, query, limit)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
