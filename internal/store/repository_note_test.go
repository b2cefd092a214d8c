// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock) {
	db, mock := newTestPostgres(t)
	return &noteRepository{db: db, logger: logger.Nop()}, mock
}

func shareRows() *sqlmock.Rows {
	return sqlmock.NewRows(shareColumns)
}

// ── CreateNote ──

func TestNoteRepository_CreateNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	note := models.Note{
		ID:        "n1",
		UserID:    7,
		Title:     "groceries",
		Content:   "milk",
		Type:      models.NoteTypeNote,
		Tags:      []string{"a", "b"},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs("n1", int64(7), "groceries", "milk", "note", `["a","b"]`, nil, false, testTime, testTime).
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).
			AddRow("n1", int64(7), "groceries", "milk", "note", `["a","b"]`, nil, false, testTime, testTime))

	created, err := repo.CreateNote(context.Background(), note)
	require.NoError(t, err)

	assert.Equal(t, "n1", created.ID)
	assert.Equal(t, []string{"a", "b"}, created.Tags)
	assert.Nil(t, created.TranscriptionID)
	assert.NotNil(t, created.SharedWith)
	assert.Empty(t, created.SharedWith)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_CreateNote_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unknown owner", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrUserNotFound},
		{name: "other failure", dbErr: errors.New("connection reset"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)
			mock.ExpectQuery("INSERT INTO notes").WillReturnError(tt.dbErr)

			_, err := repo.CreateNote(context.Background(), models.Note{ID: "n1", UserID: 1, Type: models.NoteTypeNote})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── GetNote ──

func TestNoteRepository_GetNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT .+ FROM notes WHERE id = \\$1").
		WithArgs("n1").
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).AddRow(noteRow("n1", 7, "groceries", true)...))
	mock.ExpectQuery("SELECT .+ FROM note_shares WHERE note_id IN \\(\\$1\\)").
		WithArgs("n1").
		WillReturnRows(shareRows().
			AddRow("n1", "bob@example.com", false, testTime).
			AddRow("n1", "carol@example.com", true, testTime))

	note, err := repo.GetNote(context.Background(), "n1")
	require.NoError(t, err)

	assert.True(t, note.IsShared)
	require.Len(t, note.SharedWith, 2)
	assert.Equal(t, "bob@example.com", note.SharedWith[0].Email)
	assert.True(t, note.SharedWith[1].CanEdit)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetNote_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT .+ FROM notes").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_GetNote_TranscriptionID(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT .+ FROM notes").
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).
			AddRow("n1", int64(7), "t", "c", "email", nil, "tr-1", false, testTime, testTime))
	mock.ExpectQuery("FROM note_shares").WillReturnRows(shareRows())

	note, err := repo.GetNote(context.Background(), "n1")
	require.NoError(t, err)

	require.NotNil(t, note.TranscriptionID)
	assert.Equal(t, "tr-1", *note.TranscriptionID)
	assert.Equal(t, models.NoteTypeEmail, note.Type)
	assert.Equal(t, []string{}, note.Tags)
	assert.Equal(t, []models.ShareGrant{}, note.SharedWith)
}

// ── ListUserNotes ──

func TestNoteRepository_ListUserNotes(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT .+ FROM notes WHERE user_id = \\$1 ORDER BY created_at DESC, id DESC").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).
			AddRow(noteRow("n2", 7, "second", true)...).
			AddRow(noteRow("n1", 7, "first", false)...))
	mock.ExpectQuery("FROM note_shares WHERE note_id IN \\(\\$1,\\$2\\)").
		WithArgs("n2", "n1").
		WillReturnRows(shareRows().AddRow("n2", "bob@example.com", true, testTime))

	notes, err := repo.ListUserNotes(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].ID)
	assert.Len(t, notes[0].SharedWith, 1)
	assert.Empty(t, notes[1].SharedWith)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_ListUserNotes_Empty(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("FROM notes").WillReturnRows(sqlmock.NewRows(noteRowColumns()))

	notes, err := repo.ListUserNotes(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_ListUserNotes_QueryError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("FROM notes").WillReturnError(errors.New("boom"))

	_, err := repo.ListUserNotes(context.Background(), 7)
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNoteRepository_ListSharedNotes(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("FROM notes WHERE id IN \\(SELECT note_id FROM note_shares WHERE email = \\$1\\)").
		WithArgs("bob@example.com").
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).AddRow(noteRow("n1", 7, "first", true)...))
	mock.ExpectQuery("FROM note_shares").
		WillReturnRows(shareRows().AddRow("n1", "bob@example.com", false, testTime))

	notes, err := repo.ListSharedNotes(context.Background(), "bob@example.com")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, int64(7), notes[0].UserID)
}

// ── UpdateNote ──

func TestNoteRepository_UpdateNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	title := "renamed"
	update := models.NoteUpdate{Title: &title, UpdatedAt: testTime}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes SET title = \\$1, updated_at = \\$2 WHERE id = \\$3 RETURNING").
		WithArgs("renamed", testTime, "n1").
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).AddRow(noteRow("n1", 7, "renamed", false)...))
	mock.ExpectQuery("FROM note_shares").WillReturnRows(shareRows())
	mock.ExpectCommit()

	updated, err := repo.UpdateNote(context.Background(), "n1", update)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_UpdateNote_UnshareDeletesGrants(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	shared := false
	update := models.NoteUpdate{IsShared: &shared, UpdatedAt: testTime}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes SET is_shared = \\$1").
		WithArgs(false, testTime, "n1").
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).AddRow(noteRow("n1", 7, "t", false)...))
	mock.ExpectExec("DELETE FROM note_shares WHERE note_id = \\$1").
		WithArgs("n1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("FROM note_shares").WillReturnRows(shareRows())
	mock.ExpectCommit()

	updated, err := repo.UpdateNote(context.Background(), "n1", update)
	require.NoError(t, err)
	assert.False(t, updated.IsShared)
	assert.Empty(t, updated.SharedWith)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_UpdateNote_NotFoundRollsBack(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	content := "x"
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.UpdateNote(context.Background(), "missing", models.NoteUpdate{Content: &content, UpdatedAt: testTime})
	require.ErrorIs(t, err, ErrNoteNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_UpdateNote_BeginError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	content := "x"
	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.UpdateNote(context.Background(), "n1", models.NoteUpdate{Content: &content, UpdatedAt: testTime})
	require.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── DeleteNote ──

func TestNoteRepository_DeleteNote(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrNoteNotFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)

			exp := mock.ExpectExec("DELETE FROM notes WHERE id = \\$1").WithArgs("n1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteNote(context.Background(), "n1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ── AddShare ──

func TestNoteRepository_AddShare(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	grant := models.ShareGrant{Email: "bob@example.com", CanEdit: true, SharedAt: testTime}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes SET is_shared = \\$1, updated_at = \\$2 WHERE id = \\$3").
		WithArgs(true, testTime, "n1").
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).AddRow(noteRow("n1", 7, "t", true)...))
	mock.ExpectExec("INSERT INTO note_shares .+ ON CONFLICT DO NOTHING").
		WithArgs("n1", "bob@example.com", true, testTime).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM note_shares").
		WillReturnRows(shareRows().AddRow("n1", "bob@example.com", true, testTime))
	mock.ExpectCommit()

	note, err := repo.AddShare(context.Background(), "n1", grant)
	require.NoError(t, err)

	assert.True(t, note.IsShared)
	require.Len(t, note.SharedWith, 1)
	assert.Equal(t, grant, note.SharedWith[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_AddShare_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.AddShare(context.Background(), "missing", models.ShareGrant{Email: "bob@example.com", SharedAt: testTime})
	require.ErrorIs(t, err, ErrNoteNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_AddShare_InsertFails(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes").
		WillReturnRows(sqlmock.NewRows(noteRowColumns()).AddRow(noteRow("n1", 7, "t", true)...))
	mock.ExpectExec("INSERT INTO note_shares").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.AddShare(context.Background(), "n1", models.ShareGrant{Email: "bob@example.com", SharedAt: testTime})
	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}
