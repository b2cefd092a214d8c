// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotesSnapshot is one delivery of a user notes watch stream: the complete
// ordered list at some point in time, never a delta.
//
// A non-nil Err is terminal; no further snapshot follows it.
type NotesSnapshot struct {
	Notes []Note
	Err   error
}

// NoteSnapshot is one delivery of a single-note watch stream.
// Note is nil when the note does not exist or has been deleted.
type NoteSnapshot struct {
	Note *Note
	Err  error
}

// WatchUserNotesRequest opens a stream of the caller's notes.
type WatchUserNotesRequest struct {
	UserID int64 `json:"user_id"`
}

// WatchNoteRequest opens a stream of a single note.
type WatchNoteRequest struct {
	NoteID string `json:"note_id"`
}

// NotesFrame is the wire message of a user notes stream.
type NotesFrame struct {
	Notes []Note `json:"notes"`
}

// NoteFrame is the wire message of a single-note stream.
type NoteFrame struct {
	Exists bool  `json:"exists"`
	Note   *Note `json:"note,omitempty"`
}
