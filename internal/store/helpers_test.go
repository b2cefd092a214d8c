// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/migrations"
)

func newTestDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, dialect, nil, logger.Nop()), mock
}

func newTestPostgres(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newTestDB(t, migrations.DialectPostgres)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var testTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func noteRowColumns() []string {
	return noteColumns
}

func noteRow(id string, userID int64, title string, shared bool) []driver.Value {
	return []driver.Value{id, userID, title, "body of " + title, "note", `["a","b"]`, nil, shared, testTime, testTime}
}
