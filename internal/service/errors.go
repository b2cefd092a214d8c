// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Note access and validation errors.
var (
	// ErrAccessDenied is returned when the caller is neither the owner of a
	// note nor a grantee with sufficient rights.
	ErrAccessDenied = errors.New("access to note denied")

	ErrEmptyNoteID      = errors.New("note id is empty")
	ErrInvalidNoteType  = errors.New("invalid note type")
	ErrEmptyUpdate      = errors.New("update carries no changes")
	ErrEmptyShareEmail  = errors.New("share email is empty")
	ErrShareWithOwner   = errors.New("note can not be shared with its owner")
	ErrEmptySearchQuery = errors.New("search query is empty")
)

// Settings and transcription errors.
var (
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidLanguage = errors.New("invalid language")

	ErrEmptyAudio                = errors.New("audio is empty")
	ErrEmptyRecordingID          = errors.New("recording id is empty")
	ErrEmptyTranscriptionText    = errors.New("transcription text is empty")
	ErrTranscriptionLimitReached = errors.New("monthly transcription limit reached")
	ErrTranscriberNotConfigured  = errors.New("transcription is not configured")
	ErrTranscriptionFailed       = errors.New("transcription failed")
)
