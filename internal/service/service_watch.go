// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/cespare/xxhash/v2"
)

// WatchHub fans note changes out to watch streams.
//
// A stream owns one watcher. A change only raises the watcher's signal;
// the stream then reloads the current state itself, so bursts of changes
// collapse into a single reload and a slow stream never blocks writers.
type WatchHub struct {
	notes store.NoteRepository

	mu     sync.Mutex
	byUser map[int64]map[*watcher]struct{}
	byNote map[string]map[*watcher]struct{}

	logger *logger.Logger
}

type watcher struct {
	signal chan struct{}
}

func newWatcher() *watcher {
	return &watcher{signal: make(chan struct{}, 1)}
}

func (w *watcher) notify() {
	select {
	case w.signal <- struct{}{}:
	default:
	}
}

// NewWatchHub creates a hub that loads snapshots from notes.
func NewWatchHub(notes store.NoteRepository, logger *logger.Logger) *WatchHub {
	return &WatchHub{
		notes:  notes,
		byUser: make(map[int64]map[*watcher]struct{}),
		byNote: make(map[string]map[*watcher]struct{}),
		logger: logger,
	}
}

// NoteChanged signals the owner's list streams and the streams of noteID.
func (h *WatchHub) NoteChanged(ownerID int64, noteID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for w := range h.byUser[ownerID] {
		w.notify()
	}
	for w := range h.byNote[noteID] {
		w.notify()
	}
}

// Watchers returns the number of open streams.
func (h *WatchHub) Watchers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, set := range h.byUser {
		n += len(set)
	}
	for _, set := range h.byNote {
		n += len(set)
	}
	return n
}

func subscribe[K comparable](h *WatchHub, sets map[K]map[*watcher]struct{}, key K) (*watcher, func()) {
	w := newWatcher()

	h.mu.Lock()
	set, ok := sets[key]
	if !ok {
		set = make(map[*watcher]struct{})
		sets[key] = set
	}
	set[w] = struct{}{}
	h.mu.Unlock()

	return w, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(sets[key], w)
		if len(sets[key]) == 0 {
			delete(sets, key)
		}
	}
}

// WatchUserNotes streams the notes owned by caller, newest first.
func (h *WatchHub) WatchUserNotes(ctx context.Context, caller models.Caller) (<-chan models.NotesSnapshot, error) {
	w, unsubscribe := subscribe(h, h.byUser, caller.UserID)

	// The first load happens after subscribing so no change is missed
	// between the two.
	notes, err := h.notes.ListUserNotes(ctx, caller.UserID)
	if err != nil {
		unsubscribe()
		return nil, err
	}

	out := make(chan models.NotesSnapshot)
	go func() {
		defer close(out)
		defer unsubscribe()

		var last uint64
		first := true
		for {
			if sum := fingerprint(notes); first || sum != last || sum == 0 {
				if !send(ctx, out, models.NotesSnapshot{Notes: notes}) {
					return
				}
				first, last = false, sum
			}

			select {
			case <-ctx.Done():
				return
			case <-w.signal:
			}

			notes, err = h.notes.ListUserNotes(ctx, caller.UserID)
			if err != nil {
				if ctx.Err() == nil {
					h.logger.Err(err).Int64("user_id", caller.UserID).Msg("notes watch reload failed")
					send(ctx, out, models.NotesSnapshot{Err: err})
				}
				return
			}
		}
	}()

	return out, nil
}

// WatchNote streams one note. A missing note is delivered as a nil Note.
// The stream ends with ErrAccessDenied when caller loses access.
func (h *WatchHub) WatchNote(ctx context.Context, caller models.Caller, noteID string) (<-chan models.NoteSnapshot, error) {
	if noteID == "" {
		return nil, ErrEmptyNoteID
	}

	w, unsubscribe := subscribe(h, h.byNote, noteID)

	note, err := h.loadNote(ctx, caller, noteID)
	if err != nil {
		unsubscribe()
		return nil, err
	}

	out := make(chan models.NoteSnapshot)
	go func() {
		defer close(out)
		defer unsubscribe()

		var last uint64
		first := true
		for {
			if sum := fingerprint(note); first || sum != last || sum == 0 {
				if !send(ctx, out, models.NoteSnapshot{Note: note}) {
					return
				}
				first, last = false, sum
			}

			select {
			case <-ctx.Done():
				return
			case <-w.signal:
			}

			note, err = h.loadNote(ctx, caller, noteID)
			if err != nil {
				if ctx.Err() == nil {
					h.logger.Err(err).Str("note_id", noteID).Msg("note watch reload failed")
					send(ctx, out, models.NoteSnapshot{Err: err})
				}
				return
			}
		}
	}()

	return out, nil
}

func (h *WatchHub) loadNote(ctx context.Context, caller models.Caller, noteID string) (*models.Note, error) {
	note, err := h.notes.GetNote(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !CanRead(note, caller) {
		return nil, ErrAccessDenied
	}
	return &note, nil
}

func send[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}

// fingerprint hashes the JSON form of v. Zero means v could not be encoded
// and is treated as always changed.
func fingerprint(v any) uint64 {
	data, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
