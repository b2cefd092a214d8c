// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-voice-notes/models"
)

var (
	noteColumns = []string{
		"id",
		"user_id",
		"title",
		"content",
		"type",
		"tags",
		"transcription_id",
		"is_shared",
		"created_at",
		"updated_at",
	}
	shareColumns         = []string{"note_id", "email", "can_edit", "shared_at"}
	userColumns          = []string{"user_id", "email", "password_hash", "created_at"}
	transcriptionColumns = []string{"id", "recording_id", "user_id", "text", "status", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── notes ──

func buildInsertNoteQuery(b sq.StatementBuilderType, n models.Note) (string, []any, error) {
	return b.Insert("notes").
		Columns(noteColumns...).
		Values(n.ID, n.UserID, n.Title, n.Content, string(n.Type), stringList(n.Tags),
			n.TranscriptionID, n.IsShared, n.CreatedAt, n.UpdatedAt).
		Suffix(returning(noteColumns)).
		ToSql()
}

func buildSelectNoteQuery(b sq.StatementBuilderType, noteID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": noteID}).
		ToSql()
}

// newest first; the id breaks ties between notes created in the same instant
func buildSelectUserNotesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectSharedNotesQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(noteColumns...).
		From("notes").
		Where(sq.Expr("id IN (SELECT note_id FROM note_shares WHERE email = ?)", email)).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectAllNotesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(noteColumns...).
		From("notes").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, noteID string, upd models.NoteUpdate) (string, []any, error) {
	q := b.Update("notes")

	if upd.Title != nil {
		q = q.Set("title", *upd.Title)
	}
	if upd.Content != nil {
		q = q.Set("content", *upd.Content)
	}
	if upd.Type != nil {
		q = q.Set("type", string(*upd.Type))
	}
	if upd.Tags != nil {
		q = q.Set("tags", stringList(*upd.Tags))
	}
	if upd.TranscriptionID != nil {
		q = q.Set("transcription_id", *upd.TranscriptionID)
	}
	if upd.IsShared != nil {
		q = q.Set("is_shared", *upd.IsShared)
	}

	return q.Set("updated_at", upd.UpdatedAt).
		Where(sq.Eq{"id": noteID}).
		Suffix(returning(noteColumns)).
		ToSql()
}

func buildMarkNoteSharedQuery(b sq.StatementBuilderType, noteID string, at time.Time) (string, []any, error) {
	return b.Update("notes").
		Set("is_shared", true).
		Set("updated_at", at).
		Where(sq.Eq{"id": noteID}).
		Suffix(returning(noteColumns)).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, noteID string) (string, []any, error) {
	return b.Delete("notes").
		Where(sq.Eq{"id": noteID}).
		ToSql()
}

// ── shares ──

func buildSelectSharesQuery(b sq.StatementBuilderType, noteIDs []string) (string, []any, error) {
	return b.Select(shareColumns...).
		From("note_shares").
		Where(sq.Eq{"note_id": noteIDs}).
		OrderBy("shared_at", "email").
		ToSql()
}

// grants are a set keyed by (note_id, email, can_edit); a repeated grant keeps
// its first shared_at
func buildInsertShareQuery(b sq.StatementBuilderType, noteID string, g models.ShareGrant) (string, []any, error) {
	return b.Insert("note_shares").
		Columns(shareColumns...).
		Values(noteID, g.Email, g.CanEdit, g.SharedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildDeleteSharesQuery(b sq.StatementBuilderType, noteID string) (string, []any, error) {
	return b.Delete("note_shares").
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

// ── users ──

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("email", "password_hash").
		Values(u.Email, u.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectSettingsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("settings").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateSettingsQuery(b sq.StatementBuilderType, userID int64, s models.UserSettings) (string, []any, error) {
	return b.Update("users").
		Set("settings", jsonColumn[models.UserSettings]{V: s, Valid: true}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ── transcriptions ──

func buildInsertTranscriptionQuery(b sq.StatementBuilderType, t models.Transcription) (string, []any, error) {
	return b.Insert("transcriptions").
		Columns(transcriptionColumns...).
		Values(t.ID, t.RecordingID, t.UserID, t.Text, string(t.Status), t.CreatedAt, t.UpdatedAt).
		Suffix(returning(transcriptionColumns)).
		ToSql()
}

func buildSelectTranscriptionQuery(b sq.StatementBuilderType, id string, userID int64) (string, []any, error) {
	return b.Select(transcriptionColumns...).
		From("transcriptions").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildSelectUserTranscriptionsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(transcriptionColumns...).
		From("transcriptions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildFinalizeTranscriptionQuery(b sq.StatementBuilderType, id string, userID int64, text string, at time.Time) (string, []any, error) {
	return b.Update("transcriptions").
		Set("text", text).
		Set("status", string(models.TranscriptionFinal)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning(transcriptionColumns)).
		ToSql()
}

func buildCountTranscriptionsSinceQuery(b sq.StatementBuilderType, userID int64, since time.Time) (string, []any, error) {
	return b.Select("COUNT(*)").
		From("transcriptions").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
}

// ── client cache ──

func buildUpsertSessionQuery(b sq.StatementBuilderType, s models.Session, at time.Time) (string, []any, error) {
	return b.Insert("session").
		Columns("id", "user_id", "email", "token", "saved_at").
		Values(1, s.UserID, s.Email, s.Token, at).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, email = excluded.email, " +
			"token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
}

func buildSelectSessionQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("user_id", "email", "token").
		From("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete("session").ToSql()
}

func buildUpsertCacheQuery(b sq.StatementBuilderType, table string, userID int64, payload any, at time.Time) (string, []any, error) {
	return b.Insert(table).
		Columns("user_id", "payload", "updated_at").
		Values(userID, payload, at).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectCacheQuery(b sq.StatementBuilderType, table string, userID int64) (string, []any, error) {
	return b.Select("payload").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteCacheQuery(b sq.StatementBuilderType, table string, userID int64) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
