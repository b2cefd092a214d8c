// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"admin shutdown is not retried", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, NonRetryable},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"deadlock", fmt.Errorf("update note: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), Retryable},
		{"starting up", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
		{"not a driver error", errors.New("boom"), NonRetryable},
		{"nil", nil, NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"locked and wrapped", fmt.Errorf("save session: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), Retryable},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{"other", errors.New("boom"), NonRetryable},
	}

	c := NewSQLiteErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPgCode(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, pgCode(fmt.Errorf("insert user: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.Empty(t, pgCode(errors.New("boom")))
	assert.Empty(t, pgCode(nil))
}
