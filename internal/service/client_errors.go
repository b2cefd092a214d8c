// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrNotSignedIn is returned by client operations that need a session.
var ErrNotSignedIn = errors.New("not signed in")

// StoreError reports an operation the document store rejected or could not
// complete. Err keeps the underlying cause for errors.Is and errors.As.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError reports caller input rejected before any store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: mapAdapterError(err)}
}
