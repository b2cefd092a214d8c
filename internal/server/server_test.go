// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/handler"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/watchrpc"
	"github.com/MKhiriev/go-voice-notes/internal/workers"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) models.VersionResponse {
	return models.VersionResponse{Version: "v1.2.3", Date: "N/A", Commit: "abc"}
}

type stubAuth struct{ service.AuthService }

func (stubAuth) ParseToken(context.Context, string) (models.Token, error) {
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func newTestHandlers(t *testing.T, cfg *config.StructuredConfig) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{
		AuthService:    stubAuth{},
		AppInfoService: stubAppInfo{},
	}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, nil, logger.Nop())

	assert.ErrorIs(t, err, errNoTransports)
	assert.Nil(t, s)
}

func TestNewServer_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: busy.Addr().String()}}

	_, err = NewServer(newTestHandlers(t, cfg), cfg.Server, nil, logger.Nop())
	assert.Error(t, err)
}

func TestServers_RunServesAndStops(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{
		HTTPAddress: "127.0.0.1:0",
		GRPCAddress: "127.0.0.1:0",
	}}

	var workerStopped atomic.Bool
	bg := workers.NewWorkers(funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		workerStopped.Store(true)
		return nil
	}))

	s, err := NewServer(newTestHandlers(t, cfg), cfg.Server, bg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// ── HTTP ──
	resp, err := http.Get("http://" + s.httpServer.listener.Addr().String() + "/api/version")
	require.NoError(t, err)
	var version models.VersionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&version))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "v1.2.3", version.Version)

	// ── gRPC ──
	conn, err := grpc.NewClient(s.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(watchrpc.Codec())),
	)
	require.NoError(t, err)
	defer conn.Close()

	streamCtx, streamCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer streamCancel()
	stream, err := conn.NewStream(streamCtx, watchrpc.WatchNoteStream, watchrpc.FullMethodWatchNote)
	require.NoError(t, err)
	_ = stream.SendMsg(&models.WatchNoteRequest{NoteID: "n1"})
	_ = stream.CloseSend()
	err = stream.RecvMsg(&models.NoteFrame{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	// ── shutdown ──
	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, workerStopped.Load())
}

type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }
