// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token is an access token the server issued or verified. Only Email is
// part of the JSON form; the rest stays inside the server process.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent in the
	// Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`

	// Email is the private "email" claim. Share grants are matched against it.
	Email string `json:"email,omitempty"`
}

// Caller is the identity requests made with t act on behalf of.
func (t Token) Caller() Caller {
	return Caller{UserID: t.UserID, Email: t.Email}
}

func (t *Token) String() string {
	return t.SignedString
}
