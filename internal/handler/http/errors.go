// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Bearer header failures. All of them answer 401.
var (
	ErrEmptyAuthorizationHeader   = errors.New("missing Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header, want Bearer <token>")
	ErrEmptyToken                 = errors.New("empty bearer token")
)

// errNoCaller is returned when an authenticated route runs without the
// identity the auth middleware stores in the request context.
var errNoCaller = errors.New("no caller in request context")
