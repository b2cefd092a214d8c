// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/internal/watchrpc"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key a client may use to propagate its trace ID.
const traceIDKey = "x-trace-id"

// StreamInterceptor attaches a trace scoped logger to every stream and
// authenticates it with the bearer token from the "authorization" metadata.
// The caller identity is stored in the stream context (see [utils.WithCaller]).
func (h *Handler) StreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx := ss.Context()
	md, _ := metadata.FromIncomingContext(ctx)

	traceID := firstValue(md, traceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}
	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("method", info.FullMethod)
	})
	ctx = l.WithContext(ctx)

	tokenString, ok := bearerToken(firstValue(md, watchrpc.AuthorizationKey))
	if !ok {
		l.Warn().Msg("stream without bearer token")
		return status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	token, err := h.auth.ParseToken(ctx, tokenString)
	if err != nil {
		l.Err(err).Msg("error occurred during parsing token")
		return status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	ctx = utils.WithCaller(ctx, token.Caller())
	return handler(srv, &contextStream{ServerStream: ss, ctx: ctx})
}

// contextStream overrides the context of a grpc.ServerStream.
type contextStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *contextStream) Context() context.Context {
	return s.ctx
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
