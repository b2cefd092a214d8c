// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	gomock "go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// bleve starts its analysis workers at package init.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/blevesearch/bleve_index_api.AnalysisWorker"))
}

// funcWorker adapts a function to the Worker interface.
type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

// ─────────────────────────────────────────────
// Workers
// ─────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	var calls atomic.Int32
	w := funcWorker(func(context.Context) error {
		calls.Add(1)
		return nil
	})

	ws := NewWorkers(w, w, w)
	require.NoError(t, ws.Run(context.Background()))

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 3, ws.Len())
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")

	failing := funcWorker(func(context.Context) error { return boom })
	waiting := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	err := NewWorkers(waiting, failing).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- NewWorkers(funcWorker(func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		})).Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after cancel")
	}
}

// ─────────────────────────────────────────────
// ReindexWorker
// ─────────────────────────────────────────────

func TestReindexWorker_RebuildsOnEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteStorage(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	notes.EXPECT().Reindex(gomock.Any()).DoAndReturn(func(context.Context) error {
		if rebuilds.Add(1) == 2 {
			cancel()
		}
		return nil
	}).MinTimes(2)

	w := NewReindexWorker(notes, 5*time.Millisecond, logger.Nop())
	require.NoError(t, w.Run(ctx))
	assert.GreaterOrEqual(t, rebuilds.Load(), int32(2))
}

func TestReindexWorker_FailureDoesNotStopWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteStorage(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	notes.EXPECT().Reindex(gomock.Any()).DoAndReturn(func(context.Context) error {
		if rebuilds.Add(1) == 3 {
			cancel()
		}
		return errors.New("db down")
	}).MinTimes(3)

	w := NewReindexWorker(notes, 5*time.Millisecond, logger.Nop())
	assert.NoError(t, w.Run(ctx))
}

func TestReindexWorker_DisabledWaitsForCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteStorage(ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	w := NewReindexWorker(notes, 0, logger.Nop())
	assert.NoError(t, w.Run(ctx))
}
