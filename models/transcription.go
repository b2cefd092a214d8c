// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TranscriptionStatus tracks whether the transcribed text was reviewed.
type TranscriptionStatus string

const (
	// TranscriptionDraft is the raw text returned by the speech-to-text model.
	TranscriptionDraft TranscriptionStatus = "draft"
	// TranscriptionFinal is text the user reviewed and accepted.
	TranscriptionFinal TranscriptionStatus = "final"
)

// Transcription is the text produced from one recording.
type Transcription struct {
	ID          string              `json:"id"`
	RecordingID string              `json:"recording_id"`
	UserID      int64               `json:"user_id"`
	Text        string              `json:"text"`
	Status      TranscriptionStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Transcription model.
func (t Transcription) TableName() string {
	return "transcriptions"
}

// FinalizeRequest carries the reviewed text of a transcription.
type FinalizeRequest struct {
	Text string `json:"text"`
}
