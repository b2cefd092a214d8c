// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// the request caller in a context, body signing, JSON responses, the resty
// client, JWT issuing and identifiers.
package utils

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/models"
)

type callerKey struct{}

// WithCaller returns a copy of ctx carrying the authenticated caller.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller stored by [WithCaller]. ok is false
// for a request that was never authenticated.
func CallerFromContext(ctx context.Context) (caller models.Caller, ok bool) {
	caller, ok = ctx.Value(callerKey{}).(models.Caller)
	return caller, ok
}
