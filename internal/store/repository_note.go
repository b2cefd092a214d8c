// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/samber/lo"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
)

// querier is the subset of *sql.DB and *sql.Tx the repositories rely on, so
// that helpers run unchanged inside and outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Notes live in the "notes" table, their grants in "note_shares".
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote inserts note as is. Identifier and timestamps are expected to
// be assigned by the caller.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.db.builder, note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Str("note_id", note.ID).Msg("failed to insert note")

		switch pgCode(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Note{}, ErrUserNotFound
		default:
			return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	created.SharedWith = []models.ShareGrant{}
	return created, nil
}

// GetNote returns a single note with its grants or [ErrNoteNotFound].
func (r *noteRepository) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(r.db.builder, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		note, scanErr = scanNote(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Str("note_id", noteID).Msg("failed to select note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	notes := []models.Note{note}
	if err = r.attachShares(ctx, r.db, notes); err != nil {
		return models.Note{}, err
	}

	return notes[0], nil
}

// ListUserNotes returns every note owned by userID, newest first.
func (r *noteRepository) ListUserNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	query, args, err := buildSelectUserNotesQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listNotes(ctx, "*noteRepository.ListUserNotes", query, args)
}

// ListSharedNotes returns every note with at least one grant for email,
// newest first.
func (r *noteRepository) ListSharedNotes(ctx context.Context, email string) ([]models.Note, error) {
	query, args, err := buildSelectSharedNotesQuery(r.db.builder, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listNotes(ctx, "*noteRepository.ListSharedNotes", query, args)
}

// ListAllNotes returns every stored note. It feeds the search index rebuild.
func (r *noteRepository) ListAllNotes(ctx context.Context) ([]models.Note, error) {
	query, args, err := buildSelectAllNotesQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listNotes(ctx, "*noteRepository.ListAllNotes", query, args)
}

// UpdateNote applies a partial update inside a transaction. Setting IsShared
// to false also removes every grant of the note.
func (r *noteRepository) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.db.builder, noteID, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		updated, txErr = scanNote(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(txErr, sql.ErrNoRows) {
			return ErrNoteNotFound
		}
		if txErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}

		if update.IsShared != nil && !*update.IsShared {
			deleteQuery, deleteArgs, buildErr := buildDeleteSharesQuery(r.db.builder, noteID)
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, txErr = tx.ExecContext(ctx, deleteQuery, deleteArgs...); txErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
			}
		}

		notes := []models.Note{updated}
		if txErr = r.attachShares(ctx, tx, notes); txErr != nil {
			return txErr
		}
		updated = notes[0]
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoteNotFound) {
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", noteID).Msg("failed to update note")
		}
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote removes the note; its grants go with it.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder, noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Str("note_id", noteID).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// AddShare marks the note shared and adds grant to its set of grants. Adding
// a grant that already exists keeps the original one.
func (r *noteRepository) AddShare(ctx context.Context, noteID string, grant models.ShareGrant) (models.Note, error) {
	log := logger.FromContext(ctx)

	markQuery, markArgs, err := buildMarkNoteSharedQuery(r.db.builder, noteID, grant.SharedAt)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertShareQuery(r.db.builder, noteID, grant)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var shared models.Note
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		shared, txErr = scanNote(tx.QueryRowContext(ctx, markQuery, markArgs...))
		if errors.Is(txErr, sql.ErrNoRows) {
			return ErrNoteNotFound
		}
		if txErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}

		if _, txErr = tx.ExecContext(ctx, insertQuery, insertArgs...); txErr != nil {
			if pgCode(txErr) == pgerrcode.ForeignKeyViolation {
				return ErrNoteNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}

		notes := []models.Note{shared}
		if txErr = r.attachShares(ctx, tx, notes); txErr != nil {
			return txErr
		}
		shared = notes[0]
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoteNotFound) {
			log.Err(err).Str("func", "*noteRepository.AddShare").Str("note_id", noteID).Msg("failed to share note")
		}
		return models.Note{}, err
	}

	return shared, nil
}

func (r *noteRepository) listNotes(ctx context.Context, funcName, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	var notes []models.Note
	err := r.db.withRetry(ctx, func() error {
		var queryErr error
		notes, queryErr = queryNotes(ctx, r.db, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to list notes")
		return nil, err
	}

	if err = r.attachShares(ctx, r.db, notes); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to load share grants")
		return nil, err
	}

	return notes, nil
}

// attachShares loads the grants of every note in one query and stores them
// in place. Notes without grants get an empty, non-nil slice.
func (r *noteRepository) attachShares(ctx context.Context, q querier, notes []models.Note) error {
	if len(notes) == 0 {
		return nil
	}

	ids := lo.Map(notes, func(n models.Note, _ int) string { return n.ID })
	query, args, err := buildSelectSharesQuery(r.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grants := make(map[string][]models.ShareGrant, len(notes))
	for rows.Next() {
		var (
			noteID string
			g      models.ShareGrant
		)
		if err = rows.Scan(&noteID, &g.Email, &g.CanEdit, &g.SharedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		grants[noteID] = append(grants[noteID], g)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for i := range notes {
		notes[i].SharedWith = grants[notes[i].ID]
		if notes[i].SharedWith == nil {
			notes[i].SharedWith = []models.ShareGrant{}
		}
	}

	return nil
}

func queryNotes(ctx context.Context, q querier, query string, args []any) ([]models.Note, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)
	for rows.Next() {
		n, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func scanNote(s rowScanner) (models.Note, error) {
	var (
		n               models.Note
		noteType        string
		tags            stringList
		transcriptionID sql.NullString
	)

	err := s.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Content,
		&noteType,
		&tags,
		&transcriptionID,
		&n.IsShared,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	n.Type = models.NoteType(noteType)
	n.Tags = tags
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if transcriptionID.Valid {
		id := transcriptionID.String
		n.TranscriptionID = &id
	}

	return n, nil
}
