// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorStatus struct {
	target  error
	code    codes.Code
	message string
}

var errorCodeMap = []errorStatus{
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrAccessDenied, codes.PermissionDenied, app.MsgAccessDenied},
	{service.ErrEmptyNoteID, codes.InvalidArgument, app.MsgEmptyNoteID},
	{store.ErrNoteNotFound, codes.NotFound, app.MsgNoteNotFound},
}

// statusFromError converts a service error into a gRPC status error whose
// message the client maps back to the same sentinel.
func statusFromError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	for _, e := range errorCodeMap {
		if errors.Is(err, e.target) {
			return status.Error(e.code, e.message)
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
