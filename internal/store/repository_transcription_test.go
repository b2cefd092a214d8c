// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
)

func newTestTranscriptionRepo(t *testing.T) (*transcriptionRepository, sqlmock.Sqlmock) {
	db, mock := newTestPostgres(t)
	return &transcriptionRepository{db: db, logger: logger.Nop()}, mock
}

func transcriptionRows() *sqlmock.Rows {
	return sqlmock.NewRows(transcriptionColumns)
}

func TestTranscriptionRepository_Create(t *testing.T) {
	repo, mock := newTestTranscriptionRepo(t)

	tr := models.Transcription{
		ID:          "t1",
		RecordingID: "rec-1",
		UserID:      9,
		Text:        "hello there",
		Status:      models.TranscriptionDraft,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}

	mock.ExpectQuery("INSERT INTO transcriptions").
		WithArgs("t1", "rec-1", int64(9), "hello there", "draft", testTime, testTime).
		WillReturnRows(transcriptionRows().AddRow("t1", "rec-1", int64(9), "hello there", "draft", testTime, testTime))

	created, err := repo.CreateTranscription(context.Background(), tr)
	require.NoError(t, err)
	assert.Equal(t, tr, created)
}

func TestTranscriptionRepository_Get(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		wantErr error
	}{
		{
			name: "found",
			rows: transcriptionRows().AddRow("t1", "rec-1", int64(9), "x", "final", testTime, testTime),
		},
		{name: "missing", err: sql.ErrNoRows, wantErr: ErrTranscriptionNotFound},
		{name: "driver error", err: errors.New("boom"), wantErr: ErrScanningRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestTranscriptionRepo(t)

			exp := mock.ExpectQuery("FROM transcriptions WHERE id = \\$1 AND user_id = \\$2").WithArgs("t1", int64(9))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := repo.GetTranscription(context.Background(), "t1", 9)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.TranscriptionFinal, got.Status)
		})
	}
}

func TestTranscriptionRepository_List(t *testing.T) {
	repo, mock := newTestTranscriptionRepo(t)

	mock.ExpectQuery("FROM transcriptions WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs(int64(9)).
		WillReturnRows(transcriptionRows().
			AddRow("t2", "rec-2", int64(9), "b", "draft", testTime, testTime).
			AddRow("t1", "rec-1", int64(9), "a", "final", testTime, testTime))

	list, err := repo.ListTranscriptions(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t2", list[0].ID)
}

func TestTranscriptionRepository_Finalize(t *testing.T) {
	repo, mock := newTestTranscriptionRepo(t)

	mock.ExpectQuery("UPDATE transcriptions SET text = \\$1, status = \\$2, updated_at = \\$3 WHERE id = \\$4 AND user_id = \\$5").
		WithArgs("edited", "final", testTime, "t1", int64(9)).
		WillReturnRows(transcriptionRows().AddRow("t1", "rec-1", int64(9), "edited", "final", testTime, testTime))

	got, err := repo.FinalizeTranscription(context.Background(), "t1", 9, "edited", testTime)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Text)
	assert.Equal(t, models.TranscriptionFinal, got.Status)
}

func TestTranscriptionRepository_Finalize_NotFound(t *testing.T) {
	repo, mock := newTestTranscriptionRepo(t)

	mock.ExpectQuery("UPDATE transcriptions").WillReturnError(sql.ErrNoRows)

	_, err := repo.FinalizeTranscription(context.Background(), "t1", 9, "edited", testTime)
	require.ErrorIs(t, err, ErrTranscriptionNotFound)
}

func TestTranscriptionRepository_CountSince(t *testing.T) {
	repo, mock := newTestTranscriptionRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM transcriptions WHERE user_id = \\$1 AND created_at >= \\$2").
		WithArgs(int64(9), testTime).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountTranscriptionsSince(context.Background(), 9, testTime)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
