// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WatchUserNotes streams the caller's notes. A request for another user's
// notes is rejected with PermissionDenied.
func (h *Handler) WatchUserNotes(req *models.WatchUserNotesRequest, stream grpc.ServerStream) error {
	ctx := stream.Context()
	log := logger.FromContext(ctx)

	caller, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if req.UserID != 0 && req.UserID != caller.UserID {
		log.Warn().Int64("user_id", caller.UserID).Int64("requested", req.UserID).Msg("watch of foreign notes rejected")
		return status.Error(codes.PermissionDenied, app.MsgAccessDenied)
	}

	snapshots, err := h.watch.WatchUserNotes(ctx, caller)
	if err != nil {
		log.Err(err).Int64("user_id", caller.UserID).Msg("opening notes watch failed")
		return statusFromError(err)
	}

	for snap := range snapshots {
		if snap.Err != nil {
			return statusFromError(snap.Err)
		}
		notes := snap.Notes
		if notes == nil {
			notes = []models.Note{}
		}
		if err = stream.SendMsg(&models.NotesFrame{Notes: notes}); err != nil {
			return err
		}
	}

	return streamEnd(ctx)
}

// WatchNote streams a single note. A missing or deleted note is sent as a
// frame with Exists false.
func (h *Handler) WatchNote(req *models.WatchNoteRequest, stream grpc.ServerStream) error {
	ctx := stream.Context()
	log := logger.FromContext(ctx)

	caller, err := callerFromContext(ctx)
	if err != nil {
		return err
	}

	snapshots, err := h.watch.WatchNote(ctx, caller, req.NoteID)
	if err != nil {
		log.Err(err).Str("note_id", req.NoteID).Msg("opening note watch failed")
		return statusFromError(err)
	}

	for snap := range snapshots {
		if snap.Err != nil {
			return statusFromError(snap.Err)
		}
		if err = stream.SendMsg(&models.NoteFrame{Exists: snap.Note != nil, Note: snap.Note}); err != nil {
			return err
		}
	}

	return streamEnd(ctx)
}

func callerFromContext(ctx context.Context) (models.Caller, error) {
	caller, ok := utils.CallerFromContext(ctx)
	if !ok {
		return models.Caller{}, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}
	return caller, nil
}

// streamEnd reports why the snapshot channel closed without an error.
func streamEnd(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}
	return nil
}
