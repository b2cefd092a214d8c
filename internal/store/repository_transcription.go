// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
)

type transcriptionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTranscriptionRepository constructs a [TranscriptionRepository] backed by db.
func NewTranscriptionRepository(db *DB, logger *logger.Logger) TranscriptionRepository {
	logger.Debug().Msg("creating transcription repository")
	return &transcriptionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transcriptionRepository) CreateTranscription(ctx context.Context, t models.Transcription) (models.Transcription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTranscriptionQuery(r.db.builder, t)
	if err != nil {
		return models.Transcription{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTranscription(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*transcriptionRepository.CreateTranscription").Msg("failed to insert transcription")
		return models.Transcription{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *transcriptionRepository) GetTranscription(ctx context.Context, id string, userID int64) (models.Transcription, error) {
	query, args, err := buildSelectTranscriptionQuery(r.db.builder, id, userID)
	if err != nil {
		return models.Transcription{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	t, err := scanTranscription(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transcription{}, ErrTranscriptionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*transcriptionRepository.GetTranscription").
			Str("transcription_id", id).
			Msg("failed to select transcription")
		return models.Transcription{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

func (r *transcriptionRepository) ListTranscriptions(ctx context.Context, userID int64) ([]models.Transcription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserTranscriptionsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transcriptionRepository.ListTranscriptions").Int64("user_id", userID).Msg("failed to list transcriptions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]models.Transcription, 0, 16)
	for rows.Next() {
		t, scanErr := scanTranscription(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		out = append(out, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

// FinalizeTranscription replaces the text with the reviewed version and marks
// the transcription final.
func (r *transcriptionRepository) FinalizeTranscription(ctx context.Context, id string, userID int64, text string, at time.Time) (models.Transcription, error) {
	query, args, err := buildFinalizeTranscriptionQuery(r.db.builder, id, userID, text, at)
	if err != nil {
		return models.Transcription{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	t, err := scanTranscription(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transcription{}, ErrTranscriptionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*transcriptionRepository.FinalizeTranscription").
			Str("transcription_id", id).
			Msg("failed to finalize transcription")
		return models.Transcription{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return t, nil
}

// CountTranscriptionsSince counts transcriptions the user created at or
// after since.
func (r *transcriptionRepository) CountTranscriptionsSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	query, args, err := buildCountTranscriptionsSinceQuery(r.db.builder, userID, since)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*transcriptionRepository.CountTranscriptionsSince").
			Int64("user_id", userID).
			Msg("failed to count transcriptions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func scanTranscription(s rowScanner) (models.Transcription, error) {
	var (
		t      models.Transcription
		status string
	)
	if err := s.Scan(&t.ID, &t.RecordingID, &t.UserID, &t.Text, &status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return models.Transcription{}, err
	}
	t.Status = models.TranscriptionStatus(status)
	return t, nil
}
