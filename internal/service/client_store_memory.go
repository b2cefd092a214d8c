// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/samber/lo"
)

// MemoryDocumentStore is a process local [DocumentStore] owned by a single
// user. It backs the client when no server is reachable and the tests of
// the live note set.
type MemoryDocumentStore struct {
	ownerID int64
	ids     idGenerator

	mu       sync.Mutex
	notes    map[string]models.Note
	watchers map[*watcher]struct{}
}

// NewMemoryDocumentStore creates an empty store whose notes belong to ownerID.
func NewMemoryDocumentStore(ownerID int64) *MemoryDocumentStore {
	return &MemoryDocumentStore{
		ownerID:  ownerID,
		ids:      utils.NewUUIDGenerator(),
		notes:    make(map[string]models.Note),
		watchers: make(map[*watcher]struct{}),
	}
}

func (m *MemoryDocumentStore) WatchUserNotes(ctx context.Context, userID int64) (<-chan models.NotesSnapshot, error) {
	return memWatch(ctx, m, func() models.NotesSnapshot {
		return models.NotesSnapshot{Notes: m.userNotes(userID)}
	}), nil
}

func (m *MemoryDocumentStore) WatchNote(ctx context.Context, noteID string) (<-chan models.NoteSnapshot, error) {
	return memWatch(ctx, m, func() models.NoteSnapshot {
		m.mu.Lock()
		defer m.mu.Unlock()
		n, ok := m.notes[noteID]
		if !ok {
			return models.NoteSnapshot{}
		}
		c := n.Clone()
		return models.NoteSnapshot{Note: &c}
	}), nil
}

func (m *MemoryDocumentStore) AddNote(_ context.Context, draft models.NoteDraft) (models.Note, error) {
	note := models.Note{
		ID:              m.ids.Generate(),
		UserID:          m.ownerID,
		Title:           draft.Title,
		Content:         draft.Content,
		Type:            draft.Type,
		Tags:            slices.Clone(draft.Tags),
		CreatedAt:       draft.CreatedAt,
		UpdatedAt:       draft.UpdatedAt,
		TranscriptionID: draft.TranscriptionID,
		SharedWith:      []models.ShareGrant{},
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	m.mu.Lock()
	m.notes[note.ID] = note
	m.mu.Unlock()

	m.changed()
	return note.Clone(), nil
}

func (m *MemoryDocumentStore) UpdateNote(_ context.Context, noteID string, update models.NoteUpdate) error {
	m.mu.Lock()
	n, ok := m.notes[noteID]
	if !ok {
		m.mu.Unlock()
		return store.ErrNoteNotFound
	}
	m.notes[noteID] = update.Apply(n)
	m.mu.Unlock()

	m.changed()
	return nil
}

func (m *MemoryDocumentStore) DeleteNote(_ context.Context, noteID string) error {
	m.mu.Lock()
	if _, ok := m.notes[noteID]; !ok {
		m.mu.Unlock()
		return store.ErrNoteNotFound
	}
	delete(m.notes, noteID)
	m.mu.Unlock()

	m.changed()
	return nil
}

// ShareNote adds grant unless an identical (email, canEdit) grant exists.
func (m *MemoryDocumentStore) ShareNote(_ context.Context, noteID string, grant models.ShareGrant) error {
	m.mu.Lock()
	n, ok := m.notes[noteID]
	if !ok {
		m.mu.Unlock()
		return store.ErrNoteNotFound
	}
	if !lo.ContainsBy(n.SharedWith, grant.SameGrant) {
		n.SharedWith = append(slices.Clone(n.SharedWith), grant)
	}
	n.IsShared = true
	m.notes[noteID] = n
	m.mu.Unlock()

	m.changed()
	return nil
}

// Watchers reports the number of open watch streams.
func (m *MemoryDocumentStore) Watchers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.watchers)
}

func (m *MemoryDocumentStore) userNotes(userID int64) []models.Note {
	m.mu.Lock()
	defer m.mu.Unlock()

	notes := lo.FilterMap(lo.Values(m.notes), func(n models.Note, _ int) (models.Note, bool) {
		return n.Clone(), n.UserID == userID
	})
	slices.SortFunc(notes, func(a, b models.Note) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return notes
}

func (m *MemoryDocumentStore) changed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for w := range m.watchers {
		w.notify()
	}
}

func memWatch[T any](ctx context.Context, m *MemoryDocumentStore, load func() T) <-chan T {
	w := newWatcher()
	m.mu.Lock()
	m.watchers[w] = struct{}{}
	m.mu.Unlock()

	out := make(chan T)
	go func() {
		defer close(out)
		defer func() {
			m.mu.Lock()
			delete(m.watchers, w)
			m.mu.Unlock()
		}()

		for {
			if !send(ctx, out, load()) {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-w.signal:
			}
		}
	}()
	return out
}
