// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// server handlers and by the client when it decodes error responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies and gRPC status messages. The client matches them
// verbatim, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the caller neither owns a note nor
	// holds a grant that allows the operation.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does
	// not match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"
)

// Note messages.
const (
	MsgNoteNotFound     = "note not found"
	MsgEmptyNoteID      = "note id is empty"
	MsgInvalidNoteType  = "invalid note type"
	MsgEmptyUpdate      = "update carries no changes"
	MsgEmptyShareEmail  = "share email is empty"
	MsgShareWithOwner   = "note can not be shared with its owner"
	MsgEmptySearchQuery = "search query is empty"
)

// Settings and transcription messages.
const (
	MsgInvalidTheme    = "invalid theme"
	MsgInvalidLanguage = "invalid language"

	MsgTranscriptionNotFound     = "transcription not found"
	MsgEmptyAudio                = "audio is empty"
	MsgAudioTooLarge             = "audio is too large"
	MsgEmptyRecordingID          = "recording id is empty"
	MsgEmptyTranscriptionText    = "transcription text is empty"
	MsgTranscriptionLimitReached = "monthly transcription limit reached"
	MsgTranscriberNotConfigured  = "transcription is not configured"
	MsgTranscriptionFailed       = "transcription failed"
)
