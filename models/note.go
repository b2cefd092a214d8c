// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// NoteType is the semantic kind of a note. It only affects presentation.
type NoteType string

const (
	NoteTypeNote      NoteType = "note"
	NoteTypeEmail     NoteType = "email"
	NoteTypeFlashcard NoteType = "flashcard"
	NoteTypeJournal   NoteType = "journal"
)

// NoteTypes lists every supported note type in display order.
var NoteTypes = []NoteType{NoteTypeNote, NoteTypeEmail, NoteTypeFlashcard, NoteTypeJournal}

// Valid reports whether t is one of the supported note types.
func (t NoteType) Valid() bool {
	return slices.Contains(NoteTypes, t)
}

// Note is a titled, typed piece of user content, optionally derived from a
// transcription.
//
// The server store is the owner of record. Clients only ever hold copies
// delivered by a watch stream or a direct read.
type Note struct {
	// ID is the opaque identifier assigned by the store on creation.
	ID string `json:"id"`

	// UserID is the owner of the note.
	UserID int64 `json:"user_id"`

	Title   string   `json:"title"`
	Content string   `json:"content"`
	Type    NoteType `json:"type"`

	// Tags is an unordered collection of labels.
	Tags []string `json:"tags"`

	// CreatedAt never changes after creation. UpdatedAt is refreshed on every
	// mutation, so UpdatedAt >= CreatedAt always holds.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// TranscriptionID references the transcription the note was created from.
	// It is a plain back reference: deleting the note keeps the transcription.
	TranscriptionID *string `json:"transcription_id,omitempty"`

	// SharedWith is empty whenever IsShared is false. A shared note may still
	// have no grants left.
	IsShared   bool         `json:"is_shared"`
	SharedWith []ShareGrant `json:"shared_with"`
}

// TableName returns the name of the database table associated with Note.
func (n Note) TableName() string {
	return "notes"
}

// Clone returns a deep copy of the note so that callers can hand it out
// without sharing slices or pointers with the original.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = slices.Clone(n.Tags)
	}
	if n.SharedWith != nil {
		c.SharedWith = slices.Clone(n.SharedWith)
	}
	if n.TranscriptionID != nil {
		id := *n.TranscriptionID
		c.TranscriptionID = &id
	}
	return c
}

// SharedWithEmail reports whether a grant exists for email.
func (n Note) SharedWithEmail(email string) (ShareGrant, bool) {
	for _, g := range n.SharedWith {
		if g.Email == email {
			return g, true
		}
	}
	return ShareGrant{}, false
}

// CloneNotes deep-copies a note list. A nil input yields an empty, non-nil
// slice so that consumers never have to distinguish the two.
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}

// ShareGrant authorizes one recipient to view, and optionally edit, a note.
// Grants are a set keyed by (Email, CanEdit).
type ShareGrant struct {
	Email    string    `json:"email"`
	CanEdit  bool      `json:"can_edit"`
	SharedAt time.Time `json:"shared_at"`
}

// SameGrant reports whether g and other describe the same permission.
// SharedAt is not part of the identity.
func (g ShareGrant) SameGrant(other ShareGrant) bool {
	return g.Email == other.Email && g.CanEdit == other.CanEdit
}

// NoteDraft carries the caller supplied fields of a note that does not exist
// yet. Identifier, owner and timestamps are assigned on creation.
type NoteDraft struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Type            NoteType `json:"type"`
	Tags            []string `json:"tags"`
	TranscriptionID *string  `json:"transcription_id,omitempty"`

	// CreatedAt is stamped by the client when the draft is submitted.
	// The server re-stamps it with its own clock.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteUpdate describes a partial update of a single note.
// Only non-nil fields are applied.
type NoteUpdate struct {
	Title           *string   `json:"title,omitempty"`
	Content         *string   `json:"content,omitempty"`
	Type            *NoteType `json:"type,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	TranscriptionID *string   `json:"transcription_id,omitempty"`

	// IsShared set to false revokes every grant of the note.
	IsShared *bool `json:"is_shared,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty reports whether the update carries no field changes.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Type == nil && u.Tags == nil &&
		u.TranscriptionID == nil && u.IsShared == nil
}

// Apply merges the update into n and returns the result. UpdatedAt is taken
// from the update.
func (u NoteUpdate) Apply(n Note) Note {
	out := n.Clone()
	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Content != nil {
		out.Content = *u.Content
	}
	if u.Type != nil {
		out.Type = *u.Type
	}
	if u.Tags != nil {
		out.Tags = slices.Clone(*u.Tags)
	}
	if u.TranscriptionID != nil {
		id := *u.TranscriptionID
		out.TranscriptionID = &id
	}
	if u.IsShared != nil {
		out.IsShared = *u.IsShared
		if !out.IsShared {
			out.SharedWith = nil
		}
	}
	out.UpdatedAt = u.UpdatedAt
	return out
}

// ShareRequest is the body of a share call.
type ShareRequest struct {
	Email   string `json:"email"`
	CanEdit bool   `json:"can_edit"`
}

// HighlightSegment is a contiguous run of text tagged as matching or not
// matching a search query. Segments are derived on demand and never stored.
type HighlightSegment struct {
	Text          string `json:"text"`
	IsHighlighted bool   `json:"is_highlighted"`
}
