// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
)

// ReindexWorker periodically rebuilds the full text index from the note
// repository, repairing drift left by index writes that failed.
type ReindexWorker struct {
	notes    store.NoteStorage
	interval time.Duration
	logger   *logger.Logger
}

// NewReindexWorker returns a worker rebuilding the index every interval.
// A non-positive interval makes Run wait for cancellation without
// rebuilding; the index is built once when the storage opens.
func NewReindexWorker(notes store.NoteStorage, interval time.Duration, logger *logger.Logger) *ReindexWorker {
	return &ReindexWorker{notes: notes, interval: interval, logger: logger}
}

func (w *ReindexWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.reindex(ctx)
		}
	}
}

func (w *ReindexWorker) reindex(ctx context.Context) {
	start := time.Now()
	err := w.notes.Reindex(ctx)
	switch {
	case err == nil:
		w.logger.Debug().Dur("duration", time.Since(start)).Msg("search index rebuilt")
	case errors.Is(err, context.Canceled):
	default:
		// The previous index stays in place; the next tick retries.
		w.logger.Err(err).Msg("rebuilding search index failed")
	}
}
