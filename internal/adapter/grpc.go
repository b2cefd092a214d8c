// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/watchrpc"
	"github.com/MKhiriev/go-voice-notes/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type grpcWatchAdapter struct {
	conn   *grpc.ClientConn
	tokens TokenSource
	logger *logger.Logger
}

// NewGRPCWatchAdapter dials the NoteWatch service at cfg.GRPCAddress.
// The connection is lazy: nothing is sent until the first stream opens.
// Extra dial options are appended after the defaults.
func NewGRPCWatchAdapter(cfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger, opts ...grpc.DialOption) (WatchAdapter, error) {
	target := strings.TrimSpace(cfg.GRPCAddress)
	if target == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(watchrpc.Codec())),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}

	return &grpcWatchAdapter{conn: conn, tokens: tokens, logger: logger}, nil
}

// WatchUserNotes implements [WatchAdapter]. The first frame is received
// before returning, so rejected streams fail here instead of on the channel.
func (g *grpcWatchAdapter) WatchUserNotes(ctx context.Context, userID int64) (<-chan models.NotesSnapshot, error) {
	ctx, cancel := context.WithCancel(ctx)

	stream, err := g.open(ctx, watchrpc.WatchUserNotesStream, watchrpc.FullMethodWatchUserNotes, &models.WatchUserNotesRequest{UserID: userID})
	if err != nil {
		cancel()
		return nil, err
	}

	var first models.NotesFrame
	if err = stream.RecvMsg(&first); err != nil {
		cancel()
		return nil, recvError(err)
	}

	out := make(chan models.NotesSnapshot)
	go func() {
		defer close(out)
		defer cancel()

		frame := first
		for {
			if !sendSnapshot(ctx, out, models.NotesSnapshot{Notes: frame.Notes}) {
				return
			}

			frame = models.NotesFrame{}
			if err := stream.RecvMsg(&frame); err != nil {
				if ctx.Err() == nil {
					g.logger.Warn().Err(err).Int64("user_id", userID).Msg("user notes stream ended")
					sendSnapshot(ctx, out, models.NotesSnapshot{Err: recvError(err)})
				}
				return
			}
		}
	}()

	return out, nil
}

// WatchNote implements [WatchAdapter].
func (g *grpcWatchAdapter) WatchNote(ctx context.Context, noteID string) (<-chan models.NoteSnapshot, error) {
	ctx, cancel := context.WithCancel(ctx)

	stream, err := g.open(ctx, watchrpc.WatchNoteStream, watchrpc.FullMethodWatchNote, &models.WatchNoteRequest{NoteID: noteID})
	if err != nil {
		cancel()
		return nil, err
	}

	var first models.NoteFrame
	if err = stream.RecvMsg(&first); err != nil {
		cancel()
		return nil, recvError(err)
	}

	out := make(chan models.NoteSnapshot)
	go func() {
		defer close(out)
		defer cancel()

		frame := first
		for {
			if !sendSnapshot(ctx, out, models.NoteSnapshot{Note: frameNote(frame)}) {
				return
			}

			frame = models.NoteFrame{}
			if err := stream.RecvMsg(&frame); err != nil {
				if ctx.Err() == nil {
					g.logger.Warn().Err(err).Str("note_id", noteID).Msg("note stream ended")
					sendSnapshot(ctx, out, models.NoteSnapshot{Err: recvError(err)})
				}
				return
			}
		}
	}()

	return out, nil
}

// Close implements [WatchAdapter].
func (g *grpcWatchAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcWatchAdapter) open(ctx context.Context, desc *grpc.StreamDesc, method string, req any) (grpc.ClientStream, error) {
	if token := g.tokens.Token(); token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, watchrpc.AuthorizationKey, "Bearer "+token)
	}

	stream, err := g.conn.NewStream(ctx, desc, method)
	if err != nil {
		return nil, mapGRPCError(err)
	}
	// io.EOF from SendMsg means the server already answered; the status
	// surfaces on the first RecvMsg.
	if err = stream.SendMsg(req); err != nil && !errors.Is(err, io.EOF) {
		return nil, mapGRPCError(err)
	}
	if err = stream.CloseSend(); err != nil {
		return nil, mapGRPCError(err)
	}
	return stream, nil
}

// recvError maps a stream error. A clean end of stream means the server
// went away without a status.
func recvError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrStreamClosed
	}
	return mapGRPCError(err)
}

func frameNote(f models.NoteFrame) *models.Note {
	if !f.Exists || f.Note == nil {
		return nil
	}
	note := f.Note.Clone()
	return &note
}

func sendSnapshot[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
