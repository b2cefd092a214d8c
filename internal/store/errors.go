// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Lookup and constraint failures that the service layer translates into
// domain errors.
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrNoteNotFound          = errors.New("note not found")
	ErrTranscriptionNotFound = errors.New("transcription not found")

	// ErrLocalSessionNotFound means nobody is signed in on this device.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// SQL plumbing failures. The driver error is wrapped next to them.
var (
	ErrBuildingSQLQuery     = errors.New("build sql query")
	ErrExecutingQuery       = errors.New("execute sql query")
	ErrBeginningTransaction = errors.New("begin transaction")
	ErrCommitingTransaction = errors.New("commit transaction")
	ErrExecutingStatement   = errors.New("execute sql statement")
	ErrScanningRow          = errors.New("scan row")
	ErrScanningRows         = errors.New("scan rows")

	// ErrEncodingColumn covers the JSON columns (tags, grants, segments).
	ErrEncodingColumn = errors.New("encode json column")
)
