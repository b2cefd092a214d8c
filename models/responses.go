// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotesResponse wraps a list of notes.
type NotesResponse struct {
	Notes []Note `json:"notes"`

	// Length is the total number of entries in Notes.
	Length int `json:"length"`
}

// TranscriptionsResponse wraps a list of transcriptions.
type TranscriptionsResponse struct {
	Transcriptions []Transcription `json:"transcriptions"`
}

// VersionResponse exposes server build metadata.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
